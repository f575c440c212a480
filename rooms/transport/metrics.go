package transport

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/mustang1105/twilio-service/internal/otel"
)

var (
	// Join view metrics
	joinsServed      metric.Int64Counter
	joinsRateLimited metric.Int64Counter

	// API metrics
	roomsCreated     metric.Int64Counter
	blurPrefsStored  metric.Int64Counter
	validationFailed metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("rooms.transport", intotel.PrefixTransport)

	f.Int64Counter(&joinsServed, "joins.served",
		metric.WithDescription("Join views rendered with a minted token"))

	f.Int64Counter(&joinsRateLimited, "joins.rate_limited",
		metric.WithDescription("Join requests rejected by the rate limiter"))

	f.Int64Counter(&roomsCreated, "rooms.created",
		metric.WithDescription("Rooms created through the API"))

	f.Int64Counter(&blurPrefsStored, "blur_prefs.stored",
		metric.WithDescription("Blur strength preferences stored"))

	f.Int64Counter(&validationFailed, "requests.validation_failed",
		metric.WithDescription("Requests rejected by input validation"))
}
