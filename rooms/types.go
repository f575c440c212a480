package rooms

import (
	"context"
	"time"

	"github.com/mustang1105/twilio-service/internal/errors"
)

const (
	// MaxNameLength bounds the display name persisted for a room.
	MaxNameLength = 255

	// Blur strength is a client UX preference, validated server-side.
	BlurStrengthMin = 0
	BlurStrengthMax = 10
)

// Room is a named meeting slot that maps to at most one external video session.
type Room struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SessionSid string    `json:"sessionSid,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RoomStore persists room records.
type RoomStore interface {
	// ListActive returns active rooms, newest first.
	ListActive(ctx context.Context) ([]*Room, error)
	Create(ctx context.Context, name string) (*Room, error)
	Get(ctx context.Context, roomID string) (*Room, error)
	// SetSessionSid records the external session id for a room. The field is
	// set-once; rewriting the same value is a no-op.
	SetSessionSid(ctx context.Context, roomID, sessionSid string) error
}

// SessionProvisioner maps a room to exactly one external video session,
// created lazily on first join.
type SessionProvisioner interface {
	EnsureSession(ctx context.Context, room *Room) (string, error)
}

// PrefsState keeps per-caller UX preferences. Values are ephemeral and
// TTL-bounded; they are not part of the room domain.
type PrefsState interface {
	SetBlurStrength(ctx context.Context, callerID string, value int) error
	GetBlurStrength(ctx context.Context, callerID string) (int, error)
}

// RoomService orchestrates the store, the provisioner and the token issuer.
type RoomService interface {
	ListRooms(ctx context.Context) ([]*Room, error)
	CreateRoom(ctx context.Context, name string) (*Room, error)
	// GetRoom fetches a room without provisioning anything; the preview page
	// uses it.
	GetRoom(ctx context.Context, roomID string) (*Room, error)
	// ResolveForJoin fetches the room, ensures its external session exists and
	// mints an access token binding identity to the room's session name. The
	// blur preference in the response is keyed by callerID, which may differ
	// from the token identity.
	ResolveForJoin(ctx context.Context, roomID, identity, callerID string) (*JoinResponse, error)
	RecordBlurPreference(ctx context.Context, callerID string, value int) error
	BlurPreference(ctx context.Context, callerID string) int
}

// JoinResponse carries everything the join view needs to start a call.
type JoinResponse struct {
	Room         *Room  `json:"videoRoom"`
	Token        string `json:"token"`
	BlurStrength int    `json:"blurStrength"`
}

const (
	// ErrValidation marks bad caller input (422).
	ErrValidation errors.Code = "validation failed"
	// ErrRoomNotFound marks an unknown room id (404).
	ErrRoomNotFound errors.Code = "room not found"
	// ErrUpstream marks a failed or timed-out provider call (502, retryable).
	ErrUpstream errors.Code = "upstream provisioning failed"
)
