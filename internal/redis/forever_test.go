package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mustang1105/twilio-service/internal/log"
)

type ForeverTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *goredis.Client
	forever   Forever
	ctx       context.Context
}

func TestForeverSuite(t *testing.T) {
	suite.Run(t, new(ForeverTestSuite))
}

func (s *ForeverTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = goredis.NewClient(&goredis.Options{
		Addr: mr.Addr(),
	})
	s.forever = NewForever(s.client, time.Millisecond, 10*time.Millisecond, log.NewNop())
	s.ctx = context.Background()
}

func (s *ForeverTestSuite) TearDownTest() {
	if s.client != nil {
		s.client.Close()
	}
	if s.miniRedis != nil {
		s.miniRedis.Close()
	}
}

func (s *ForeverTestSuite) TestSetAndGet() {
	s.NoError(s.forever.Set(s.ctx, "k", "v", time.Minute))

	val, err := s.forever.Get(s.ctx, "k")
	s.NoError(err)
	s.Equal("v", val)
}

func (s *ForeverTestSuite) TestGet_MissingReturnsNil() {
	_, err := s.forever.Get(s.ctx, "missing")
	s.Equal(goredis.Nil, err)
}

func (s *ForeverTestSuite) TestGet_RetriesUntilServerRecovers() {
	s.Require().NoError(s.miniRedis.Set("k", "v"))
	s.miniRedis.SetError("temporary failure")

	done := make(chan struct{})
	go func() {
		defer close(done)
		val, err := s.forever.Get(s.ctx, "k")
		s.NoError(err)
		s.Equal("v", val)
	}()

	time.Sleep(20 * time.Millisecond)
	s.miniRedis.SetError("")
	<-done
}

func (s *ForeverTestSuite) TestGet_CancelledContextStopsRetrying() {
	ctx, cancel := context.WithCancel(s.ctx)
	s.miniRedis.SetError("persistent failure")

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := s.forever.Get(ctx, "k")
	s.Error(err)
}
