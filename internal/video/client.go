package video

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"

	"github.com/mustang1105/twilio-service/internal/errors"
	"github.com/mustang1105/twilio-service/internal/log"
)

const (
	sessionAPITimeout = 10 * time.Second

	// provider error code for "room with this unique name already exists"
	codeSessionExists = 53113
)

type Config struct {
	BaseURL    string `mapstructure:"base_url"`
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	// SessionType is passed through on create; the provider routes media
	// accordingly ("group" matches the multi-party SFU behavior we want).
	SessionType string `mapstructure:"session_type"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("base_url"), "https://video.twilio.com")
	v.SetDefault(p("account_sid"), "")
	v.SetDefault(p("auth_token"), "")
	v.SetDefault(p("session_type"), "group")
}

type apiImpl struct {
	client      *resty.Client
	sessionType string
	logger      *log.Logger
}

// New creates a provider session client backed by go-resty. The account
// credential pair authenticates REST calls only; access tokens are signed
// elsewhere with a separate API key.
func New(cfg *Config, logger *log.Logger) SessionAPI {
	if logger == nil {
		panic("logger is required")
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken).
		SetTimeout(sessionAPITimeout)

	return &apiImpl{
		client:      client,
		sessionType: cfg.SessionType,
		logger:      logger,
	}
}

func (api *apiImpl) CreateSession(ctx context.Context, uniqueName string) (string, error) {
	api.logger.Debug("provider create session", log.String("uniqueName", uniqueName))

	var payload sessionPayload
	var errPayload errorPayload
	resp, err := api.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"UniqueName": uniqueName,
			"Type":       api.sessionType,
		}).
		SetResult(&payload).
		SetError(&errPayload).
		Post("/v1/Rooms")
	if err != nil {
		return "", errors.Wrap(ErrFailedRequest, err, "create session")
	}

	if resp.IsError() {
		// Another writer may have provisioned the same name first; resolve
		// the race by reading the session it created.
		if errPayload.Code == codeSessionExists {
			api.logger.Info("session already provisioned, fetching existing",
				log.String("uniqueName", uniqueName))
			return api.FetchSession(ctx, uniqueName)
		}
		return "", errors.Newf(ErrProviderError,
			"create session: (http %d, code %d, %s)",
			resp.StatusCode(), errPayload.Code, errPayload.Message)
	}

	if payload.Sid == "" {
		return "", errors.New(ErrInvalidPayload, "create session response missing sid")
	}
	api.logger.Debug("provider session created",
		log.String("uniqueName", uniqueName),
		log.String("sid", payload.Sid))
	return payload.Sid, nil
}

func (api *apiImpl) FetchSession(ctx context.Context, uniqueName string) (string, error) {
	var payload sessionPayload
	var errPayload errorPayload
	resp, err := api.client.R().
		SetContext(ctx).
		SetResult(&payload).
		SetError(&errPayload).
		SetPathParam("name", uniqueName).
		Get("/v1/Rooms/{name}")
	if err != nil {
		return "", errors.Wrap(ErrFailedRequest, err, "fetch session")
	}

	if resp.StatusCode() == http.StatusNotFound {
		return "", errors.Newf(ErrSessionNotFound, "session %s", uniqueName)
	}
	if resp.IsError() {
		return "", errors.Newf(ErrProviderError,
			"fetch session: (http %d, code %d, %s)",
			resp.StatusCode(), errPayload.Code, errPayload.Message)
	}

	if payload.Sid == "" {
		return "", errors.New(ErrInvalidPayload, "fetch session response missing sid")
	}
	return payload.Sid, nil
}
