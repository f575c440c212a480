package prefs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mustang1105/twilio-service/internal/log"
	fredis "github.com/mustang1105/twilio-service/internal/redis"
	"github.com/mustang1105/twilio-service/rooms"
)

const (
	defaultTTL      = 24 * time.Hour
	memCacheEntries = 4096
)

// New creates a caller-scoped preference state: an in-process expirable cache
// in front of redis. Writes go to both layers; reads prefer memory and fall
// back to redis, so a restarted instance still sees the caller's value.
func New(
	redisClient *goredis.Client,
	prefix string,
	ttl time.Duration,
	logger *log.Logger,
) rooms.PrefsState {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	fclient := fredis.NewForever(
		redisClient,
		5*time.Millisecond,
		5*time.Second,
		logger,
	)

	return &prefsState{
		client: fclient,
		mem:    lru.NewLRU[string, int](memCacheEntries, nil, ttl),
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

type prefsState struct {
	client fredis.Forever
	mem    *lru.LRU[string, int]
	prefix string
	ttl    time.Duration
	logger *log.Logger
}

func (p *prefsState) SetBlurStrength(ctx context.Context, callerID string, value int) error {
	p.mem.Add(callerID, value)
	if err := p.client.Set(ctx, p.blurKey(callerID), value, p.ttl); err != nil {
		return fmt.Errorf("failed to store blur strength: %w", err)
	}
	return nil
}

func (p *prefsState) GetBlurStrength(ctx context.Context, callerID string) (int, error) {
	if value, ok := p.mem.Get(callerID); ok {
		return value, nil
	}

	raw, err := p.client.Get(ctx, p.blurKey(callerID))
	if err == goredis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read blur strength: %w", err)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		p.logger.Warn("invalid blur strength value in redis",
			log.String("callerId", callerID),
			log.String("value", raw))
		return 0, nil
	}

	p.mem.Add(callerID, value)
	return value, nil
}

func (p *prefsState) blurKey(callerID string) string {
	return fmt.Sprintf("%s:prefs:%s:blur", p.prefix, callerID)
}
