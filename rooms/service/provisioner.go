package service

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/mustang1105/twilio-service/internal/errors"
	"github.com/mustang1105/twilio-service/internal/log"
	"github.com/mustang1105/twilio-service/internal/video"
	"github.com/mustang1105/twilio-service/rooms"
)

type provisionerImpl struct {
	sessionAPI video.SessionAPI
	roomStore  rooms.RoomStore
	group      singleflight.Group
	logger     *log.Logger
}

// NewSessionProvisioner maps rooms to external sessions, creating them lazily
// on first join. Concurrent first-joins for the same room within this process
// share one provider call via singleflight; cross-process duplicates resolve
// on the provider side by unique session name.
func NewSessionProvisioner(
	sessionAPI video.SessionAPI,
	roomStore rooms.RoomStore,
	logger *log.Logger,
) rooms.SessionProvisioner {
	return &provisionerImpl{
		sessionAPI: sessionAPI,
		roomStore:  roomStore,
		logger:     logger,
	}
}

func (p *provisionerImpl) EnsureSession(ctx context.Context, room *rooms.Room) (string, error) {
	if room.SessionSid != "" {
		return room.SessionSid, nil
	}

	sid, err, shared := p.group.Do(room.ID, func() (any, error) {
		return p.provision(ctx, room)
	})
	if err != nil {
		return "", err
	}
	if shared {
		p.logger.Debug("provisioning call shared between concurrent joins",
			log.String("roomId", room.ID))
	}
	return sid.(string), nil
}

func (p *provisionerImpl) provision(ctx context.Context, room *rooms.Room) (string, error) {
	sessionProvisionAttempts.Add(ctx, 1)

	sid, err := p.sessionAPI.CreateSession(ctx, room.Name)
	if err != nil {
		sessionProvisionFailed.Add(ctx, 1)
		// The room keeps an empty sid; the caller may simply retry the join.
		return "", errors.Wrapf(rooms.ErrUpstream, err, "provision session for room %s", room.ID)
	}

	if err := p.roomStore.SetSessionSid(ctx, room.ID, sid); err != nil {
		sessionProvisionFailed.Add(ctx, 1)
		return "", err
	}
	room.SessionSid = sid

	sessionProvisionSuccess.Add(ctx, 1)
	p.logger.Info("Provisioned external session",
		log.String("roomId", room.ID),
		log.String("sessionSid", sid))
	return sid, nil
}
