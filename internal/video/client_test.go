package video

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mustang1105/twilio-service/internal/errors"
	"github.com/mustang1105/twilio-service/internal/log"
)

type SessionAPITestSuite struct {
	suite.Suite
	server *httptest.Server
	api    SessionAPI

	// per-test knobs consumed by the fake provider
	existingSessions map[string]string
	createStatus     int
	createErrCode    int
	lastCreateForm   map[string]string
	lastAuthUser     string
	lastAuthPass     string
}

func TestSessionAPISuite(t *testing.T) {
	suite.Run(t, new(SessionAPITestSuite))
}

func (s *SessionAPITestSuite) SetupTest() {
	s.existingSessions = map[string]string{}
	s.createStatus = 0
	s.createErrCode = 0
	s.lastCreateForm = nil

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handleProviderRequest(w, r)
	}))
	s.api = New(&Config{
		BaseURL:     s.server.URL,
		AccountSID:  "AC0000000000000000000000000000000000",
		AuthToken:   "auth-token",
		SessionType: "group",
	}, log.NewNop())
}

func (s *SessionAPITestSuite) TearDownTest() {
	s.server.Close()
}

func (s *SessionAPITestSuite) handleProviderRequest(w http.ResponseWriter, r *http.Request) {
	s.lastAuthUser, s.lastAuthPass, _ = r.BasicAuth()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v1/Rooms":
		s.NoError(r.ParseForm())
		s.lastCreateForm = map[string]string{
			"UniqueName": r.PostFormValue("UniqueName"),
			"Type":       r.PostFormValue("Type"),
		}

		if s.createStatus != 0 {
			w.WriteHeader(s.createStatus)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code":    s.createErrCode,
				"message": "simulated provider failure",
				"status":  s.createStatus,
			})
			return
		}

		name := r.PostFormValue("UniqueName")
		s.existingSessions[name] = "RM" + name
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sid":         "RM" + name,
			"unique_name": name,
			"status":      "in-progress",
		})

	case r.Method == http.MethodGet:
		name := r.URL.Path[len("/v1/Rooms/"):]
		sid, ok := s.existingSessions[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"code":    20404,
				"message": "not found",
				"status":  404,
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sid":         sid,
			"unique_name": name,
			"status":      "in-progress",
		})

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *SessionAPITestSuite) TestCreateSession_Success() {
	sid, err := s.api.CreateSession(context.Background(), "Team Sync")
	s.NoError(err)
	s.Equal("RMTeam Sync", sid)
	s.Equal("Team Sync", s.lastCreateForm["UniqueName"])
	s.Equal("group", s.lastCreateForm["Type"])
}

func (s *SessionAPITestSuite) TestCreateSession_SendsBasicAuth() {
	_, err := s.api.CreateSession(context.Background(), "Team Sync")
	s.NoError(err)
	s.Equal("AC0000000000000000000000000000000000", s.lastAuthUser)
	s.Equal("auth-token", s.lastAuthPass)
}

func (s *SessionAPITestSuite) TestCreateSession_ExistsFallsBackToFetch() {
	s.existingSessions["Team Sync"] = "RM0001"
	s.createStatus = http.StatusBadRequest
	s.createErrCode = 53113

	sid, err := s.api.CreateSession(context.Background(), "Team Sync")
	s.NoError(err)
	s.Equal("RM0001", sid)
}

func (s *SessionAPITestSuite) TestCreateSession_ProviderError() {
	s.createStatus = http.StatusInternalServerError
	s.createErrCode = 20500

	sid, err := s.api.CreateSession(context.Background(), "Team Sync")
	s.Empty(sid)
	s.True(errors.Is(err, ErrProviderError))
	s.Contains(err.Error(), "20500")
}

func (s *SessionAPITestSuite) TestCreateSession_ConnectionError() {
	s.server.Close()

	sid, err := s.api.CreateSession(context.Background(), "Team Sync")
	s.Empty(sid)
	s.True(errors.Is(err, ErrFailedRequest))
}

func (s *SessionAPITestSuite) TestFetchSession_Success() {
	s.existingSessions["Team Sync"] = "RM0001"

	sid, err := s.api.FetchSession(context.Background(), "Team Sync")
	s.NoError(err)
	s.Equal("RM0001", sid)
}

func (s *SessionAPITestSuite) TestFetchSession_NotFound() {
	sid, err := s.api.FetchSession(context.Background(), "missing")
	s.Empty(sid)
	s.True(errors.Is(err, ErrSessionNotFound))
}
