package video

import "github.com/mustang1105/twilio-service/internal/errors"

const (
	ErrFailedRequest   errors.Code = "fail to make request"
	ErrInvalidPayload  errors.Code = "invalid payload"
	ErrProviderError   errors.Code = "provider error response"
	ErrSessionNotFound errors.Code = "session not found"
)
