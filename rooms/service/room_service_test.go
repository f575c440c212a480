package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	tokenmocks "github.com/mustang1105/twilio-service/internal/accesstoken/mocks"
	interrors "github.com/mustang1105/twilio-service/internal/errors"
	"github.com/mustang1105/twilio-service/internal/log"
	"github.com/mustang1105/twilio-service/rooms"
	roommocks "github.com/mustang1105/twilio-service/rooms/mocks"
)

type RoomServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRoomStore   *roommocks.MockRoomStore
	mockProvisioner *roommocks.MockSessionProvisioner
	mockIssuer      *tokenmocks.MockIssuer
	mockPrefs       *roommocks.MockPrefsState
	service         rooms.RoomService
	ctx             context.Context
}

func TestRoomServiceSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}

func (s *RoomServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoomStore = roommocks.NewMockRoomStore(s.ctrl)
	s.mockProvisioner = roommocks.NewMockSessionProvisioner(s.ctrl)
	s.mockIssuer = tokenmocks.NewMockIssuer(s.ctrl)
	s.mockPrefs = roommocks.NewMockPrefsState(s.ctrl)
	s.service = NewRoomService(
		s.mockRoomStore,
		s.mockProvisioner,
		s.mockIssuer,
		s.mockPrefs,
		log.NewTest(s.T()),
	)
	s.ctx = context.Background()
}

func (s *RoomServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// ListRooms / CreateRoom / GetRoom Tests

func (s *RoomServiceTestSuite) TestListRooms() {
	want := []*rooms.Room{
		{ID: "a", Name: "Newer", IsActive: true, CreatedAt: time.Now().UTC()},
		{ID: "b", Name: "Older", IsActive: true, CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}
	s.mockRoomStore.EXPECT().ListActive(gomock.Any()).Return(want, nil)

	got, err := s.service.ListRooms(s.ctx)
	s.NoError(err)
	s.Equal(want, got)
}

func (s *RoomServiceTestSuite) TestListRooms_StoreError() {
	s.mockRoomStore.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("etcd connection error"))

	got, err := s.service.ListRooms(s.ctx)
	s.Nil(got)
	s.Contains(err.Error(), "failed to list rooms")
}

func (s *RoomServiceTestSuite) TestCreateRoom() {
	want := &rooms.Room{ID: "room-123", Name: "Team Sync", IsActive: true}
	s.mockRoomStore.EXPECT().Create(gomock.Any(), "Team Sync").Return(want, nil)

	got, err := s.service.CreateRoom(s.ctx, "Team Sync")
	s.NoError(err)
	s.Equal(want, got)
}

func (s *RoomServiceTestSuite) TestCreateRoom_ValidationErrorPropagates() {
	s.mockRoomStore.EXPECT().
		Create(gomock.Any(), "").
		Return(nil, interrors.New(rooms.ErrValidation, "name is required"))

	got, err := s.service.CreateRoom(s.ctx, "")
	s.Nil(got)
	s.True(interrors.Is(err, rooms.ErrValidation))
}

func (s *RoomServiceTestSuite) TestGetRoom() {
	want := &rooms.Room{ID: "room-123", Name: "Team Sync", IsActive: true}
	s.mockRoomStore.EXPECT().Get(gomock.Any(), "room-123").Return(want, nil)

	got, err := s.service.GetRoom(s.ctx, "room-123")
	s.NoError(err)
	s.Equal(want, got)
}

// ResolveForJoin Tests

func (s *RoomServiceTestSuite) TestResolveForJoin_Success() {
	room := &rooms.Room{ID: "room-123", Name: "Team Sync", IsActive: true}

	s.mockRoomStore.EXPECT().Get(gomock.Any(), "room-123").Return(room, nil)
	s.mockProvisioner.EXPECT().EnsureSession(gomock.Any(), room).Return("RM0001", nil)
	s.mockIssuer.EXPECT().Issue("alice", "Team Sync").Return("signed-token", nil)
	s.mockPrefs.EXPECT().GetBlurStrength(gomock.Any(), "caller-1").Return(7, nil)

	resp, err := s.service.ResolveForJoin(s.ctx, "room-123", "alice", "caller-1")
	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("RM0001", resp.Room.SessionSid)
	s.Equal("signed-token", resp.Token)
	s.Equal(7, resp.BlurStrength)
}

func (s *RoomServiceTestSuite) TestResolveForJoin_BlurKeyedByCallerNotIdentity() {
	room := &rooms.Room{ID: "room-123", Name: "Team Sync", SessionSid: "RM0001", IsActive: true}

	s.mockRoomStore.EXPECT().Get(gomock.Any(), "room-123").Return(room, nil)
	s.mockProvisioner.EXPECT().EnsureSession(gomock.Any(), room).Return("RM0001", nil)
	s.mockIssuer.EXPECT().Issue("alice", "Team Sync").Return("signed-token", nil)
	// the preference stored against the caller's session must come back even
	// though the token identity differs
	s.mockPrefs.EXPECT().GetBlurStrength(gomock.Any(), "caller-1").Return(5, nil)

	resp, err := s.service.ResolveForJoin(s.ctx, "room-123", "alice", "caller-1")
	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal(5, resp.BlurStrength)
}

func (s *RoomServiceTestSuite) TestResolveForJoin_EmptyIdentity() {
	resp, err := s.service.ResolveForJoin(s.ctx, "room-123", "", "caller-1")
	s.Nil(resp)
	s.True(interrors.Is(err, rooms.ErrValidation))
}

func (s *RoomServiceTestSuite) TestResolveForJoin_RoomNotFound() {
	s.mockRoomStore.EXPECT().
		Get(gomock.Any(), "missing").
		Return(nil, interrors.Newf(rooms.ErrRoomNotFound, "room %s", "missing"))

	// no provisioning or token issuance for an unknown room
	resp, err := s.service.ResolveForJoin(s.ctx, "missing", "alice", "caller-1")
	s.Nil(resp)
	s.True(interrors.Is(err, rooms.ErrRoomNotFound))
}

func (s *RoomServiceTestSuite) TestResolveForJoin_ProvisioningFailure() {
	room := &rooms.Room{ID: "room-123", Name: "Team Sync", IsActive: true}

	s.mockRoomStore.EXPECT().Get(gomock.Any(), "room-123").Return(room, nil)
	s.mockProvisioner.EXPECT().
		EnsureSession(gomock.Any(), room).
		Return("", interrors.New(rooms.ErrUpstream, "provider unavailable"))

	resp, err := s.service.ResolveForJoin(s.ctx, "room-123", "alice", "caller-1")
	s.Nil(resp)
	s.True(interrors.Is(err, rooms.ErrUpstream))
}

func (s *RoomServiceTestSuite) TestResolveForJoin_IssuerFailure() {
	room := &rooms.Room{ID: "room-123", Name: "Team Sync", IsActive: true}

	s.mockRoomStore.EXPECT().Get(gomock.Any(), "room-123").Return(room, nil)
	s.mockProvisioner.EXPECT().EnsureSession(gomock.Any(), room).Return("RM0001", nil)
	s.mockIssuer.EXPECT().Issue("alice", "Team Sync").Return("", errors.New("signing failed"))

	resp, err := s.service.ResolveForJoin(s.ctx, "room-123", "alice", "caller-1")
	s.Nil(resp)
	s.Contains(err.Error(), "failed to issue access token")
}

func (s *RoomServiceTestSuite) TestResolveForJoin_PrefsFailureFallsBackToZero() {
	room := &rooms.Room{ID: "room-123", Name: "Team Sync", IsActive: true}

	s.mockRoomStore.EXPECT().Get(gomock.Any(), "room-123").Return(room, nil)
	s.mockProvisioner.EXPECT().EnsureSession(gomock.Any(), room).Return("RM0001", nil)
	s.mockIssuer.EXPECT().Issue("alice", "Team Sync").Return("signed-token", nil)
	s.mockPrefs.EXPECT().
		GetBlurStrength(gomock.Any(), "caller-1").
		Return(0, errors.New("redis connection error"))

	resp, err := s.service.ResolveForJoin(s.ctx, "room-123", "alice", "caller-1")
	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal(0, resp.BlurStrength)
}

// Blur Preference Tests

func (s *RoomServiceTestSuite) TestRecordBlurPreference() {
	s.mockPrefs.EXPECT().SetBlurStrength(gomock.Any(), "caller-1", 5).Return(nil)

	s.NoError(s.service.RecordBlurPreference(s.ctx, "caller-1", 5))
}

func (s *RoomServiceTestSuite) TestRecordBlurPreference_Bounds() {
	s.mockPrefs.EXPECT().SetBlurStrength(gomock.Any(), "caller-1", rooms.BlurStrengthMin).Return(nil)
	s.mockPrefs.EXPECT().SetBlurStrength(gomock.Any(), "caller-1", rooms.BlurStrengthMax).Return(nil)

	s.NoError(s.service.RecordBlurPreference(s.ctx, "caller-1", rooms.BlurStrengthMin))
	s.NoError(s.service.RecordBlurPreference(s.ctx, "caller-1", rooms.BlurStrengthMax))

	err := s.service.RecordBlurPreference(s.ctx, "caller-1", rooms.BlurStrengthMin-1)
	s.True(interrors.Is(err, rooms.ErrValidation))
	err = s.service.RecordBlurPreference(s.ctx, "caller-1", rooms.BlurStrengthMax+1)
	s.True(interrors.Is(err, rooms.ErrValidation))
}

func (s *RoomServiceTestSuite) TestBlurPreference() {
	s.mockPrefs.EXPECT().GetBlurStrength(gomock.Any(), "caller-1").Return(3, nil)

	s.Equal(3, s.service.BlurPreference(s.ctx, "caller-1"))
}

func (s *RoomServiceTestSuite) TestBlurPreference_ErrorFallsBackToZero() {
	s.mockPrefs.EXPECT().
		GetBlurStrength(gomock.Any(), "caller-1").
		Return(0, errors.New("redis connection error"))

	s.Equal(0, s.service.BlurPreference(s.ctx, "caller-1"))
}
