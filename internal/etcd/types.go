package etcd

import (
	"context"

	clientv3 "go.etcd.io/etcd/client/v3"
)

// Client is the subset of the etcd client surface this service uses.
type Client interface {
	Get(ctx context.Context, key string, opts ...clientv3.OpOption) (*clientv3.GetResponse, error)
	Put(ctx context.Context, key, val string, opts ...clientv3.OpOption) (*clientv3.PutResponse, error)
}
