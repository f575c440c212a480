package service

import (
	"context"
	"fmt"

	"github.com/mustang1105/twilio-service/internal/accesstoken"
	"github.com/mustang1105/twilio-service/internal/errors"
	"github.com/mustang1105/twilio-service/internal/log"
	"github.com/mustang1105/twilio-service/rooms"
)

type roomSvcImpl struct {
	roomStore   rooms.RoomStore
	provisioner rooms.SessionProvisioner
	issuer      accesstoken.Issuer
	prefs       rooms.PrefsState
	logger      *log.Logger
}

func NewRoomService(
	roomStore rooms.RoomStore,
	provisioner rooms.SessionProvisioner,
	issuer accesstoken.Issuer,
	prefs rooms.PrefsState,
	logger *log.Logger,
) rooms.RoomService {
	return &roomSvcImpl{
		roomStore:   roomStore,
		provisioner: provisioner,
		issuer:      issuer,
		prefs:       prefs,
		logger:      logger,
	}
}

func (rs *roomSvcImpl) ListRooms(ctx context.Context) ([]*rooms.Room, error) {
	list, err := rs.roomStore.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return list, nil
}

func (rs *roomSvcImpl) CreateRoom(ctx context.Context, name string) (*rooms.Room, error) {
	room, err := rs.roomStore.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (rs *roomSvcImpl) GetRoom(ctx context.Context, roomID string) (*rooms.Room, error) {
	return rs.roomStore.Get(ctx, roomID)
}

func (rs *roomSvcImpl) ResolveForJoin(ctx context.Context, roomID, identity, callerID string) (*rooms.JoinResponse, error) {
	if identity == "" {
		return nil, errors.New(rooms.ErrValidation, "identity is required")
	}

	room, err := rs.roomStore.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	sid, err := rs.provisioner.EnsureSession(ctx, room)
	if err != nil {
		return nil, err
	}
	room.SessionSid = sid

	token, err := rs.issuer.Issue(identity, room.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	tokensIssued.Add(ctx, 1)

	rs.logger.Info("Resolved room for join",
		log.String("roomId", room.ID),
		log.String("identity", identity))

	return &rooms.JoinResponse{
		Room:         room,
		Token:        token,
		BlurStrength: rs.BlurPreference(ctx, callerID),
	}, nil
}

func (rs *roomSvcImpl) RecordBlurPreference(ctx context.Context, callerID string, value int) error {
	if value < rooms.BlurStrengthMin || value > rooms.BlurStrengthMax {
		return errors.Newf(rooms.ErrValidation, "blur strength must be between %d and %d",
			rooms.BlurStrengthMin, rooms.BlurStrengthMax)
	}
	return rs.prefs.SetBlurStrength(ctx, callerID, value)
}

// BlurPreference reads the caller's stored blur strength; missing or failed
// reads fall back to 0 so a join view can always render.
func (rs *roomSvcImpl) BlurPreference(ctx context.Context, callerID string) int {
	value, err := rs.prefs.GetBlurStrength(ctx, callerID)
	if err != nil {
		rs.logger.Warn("Failed to read blur preference",
			log.String("callerId", callerID),
			log.Error(err))
		return 0
	}
	return value
}
