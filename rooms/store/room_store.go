package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/mustang1105/twilio-service/internal/errors"
	"github.com/mustang1105/twilio-service/internal/etcd"
	"github.com/mustang1105/twilio-service/internal/log"
	"github.com/mustang1105/twilio-service/rooms"
)

const metaSuffix = "/meta"

type roomStoreImpl struct {
	etcdClient etcd.Client
	prefix     string
	logger     *log.Logger
}

func NewRoomStore(etcdClient etcd.Client, prefix string, logger *log.Logger) rooms.RoomStore {
	return &roomStoreImpl{
		etcdClient: etcdClient,
		prefix:     prefix,
		logger:     logger,
	}
}

func (rs *roomStoreImpl) metaKey(roomID string) string {
	return fmt.Sprintf("%s%s%s", rs.prefix, roomID, metaSuffix)
}

func (rs *roomStoreImpl) Create(ctx context.Context, name string) (*rooms.Room, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	room := &rooms.Room{
		ID:        uuid.NewString(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := rs.put(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to store room: %w", err)
	}

	rs.logger.Info("Created room",
		log.String("roomId", room.ID),
		log.String("name", room.Name))
	return room, nil
}

func (rs *roomStoreImpl) Get(ctx context.Context, roomID string) (*rooms.Room, error) {
	resp, err := rs.etcdClient.Get(ctx, rs.metaKey(roomID))
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if len(resp.Kvs) == 0 {
		return nil, errors.Newf(rooms.ErrRoomNotFound, "room %s", roomID)
	}

	var room rooms.Room
	if err := json.Unmarshal(resp.Kvs[0].Value, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room data: %w", err)
	}
	return &room, nil
}

func (rs *roomStoreImpl) ListActive(ctx context.Context) ([]*rooms.Room, error) {
	resp, err := rs.etcdClient.Get(ctx, rs.prefix, clientv3.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	active := make([]*rooms.Room, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		key := string(kv.Key)
		if !strings.HasSuffix(key, metaSuffix) {
			continue
		}
		var room rooms.Room
		if err := json.Unmarshal(kv.Value, &room); err != nil {
			rs.logger.Error("Failed to unmarshal room data",
				log.String("key", key),
				log.Error(err))
			continue
		}
		if room.IsActive {
			active = append(active, &room)
		}
	}

	// newest first
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active, nil
}

func (rs *roomStoreImpl) SetSessionSid(ctx context.Context, roomID, sessionSid string) error {
	room, err := rs.Get(ctx, roomID)
	if err != nil {
		return err
	}
	if room.SessionSid == sessionSid {
		return nil
	}

	room.SessionSid = sessionSid
	room.UpdatedAt = time.Now().UTC()
	if err := rs.put(ctx, room); err != nil {
		return fmt.Errorf("failed to store session sid: %w", err)
	}

	rs.logger.Info("Recorded external session",
		log.String("roomId", roomID),
		log.String("sessionSid", sessionSid))
	return nil
}

func (rs *roomStoreImpl) put(ctx context.Context, room *rooms.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room data: %w", err)
	}
	_, err = rs.etcdClient.Put(ctx, rs.metaKey(room.ID), string(data))
	return err
}

func validateName(name string) error {
	if name == "" {
		return errors.New(rooms.ErrValidation, "name is required")
	}
	if utf8.RuneCountInString(name) > rooms.MaxNameLength {
		return errors.Newf(rooms.ErrValidation, "name exceeds %d characters", rooms.MaxNameLength)
	}
	return nil
}
