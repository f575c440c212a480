package video

import "context"

// SessionAPI is the subset of the hosted video provider's REST surface this
// service consumes. Sessions are keyed by unique name; creation is idempotent
// from the caller's point of view (an existing name resolves to its sid).
type SessionAPI interface {
	CreateSession(ctx context.Context, uniqueName string) (string, error)
	FetchSession(ctx context.Context, uniqueName string) (string, error)
}

// sessionPayload models the subset of provider room fields this client cares about.
type sessionPayload struct {
	Sid        string `json:"sid"`
	UniqueName string `json:"unique_name"`
	Status     string `json:"status"`
}

// errorPayload is the provider's error envelope.
type errorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
