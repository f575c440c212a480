package otel

// Metric prefixes per subsystem.
const (
	PrefixRooms     = "video_rooms"
	PrefixTransport = "video_rooms_http"
)
