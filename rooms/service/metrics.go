package service

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/mustang1105/twilio-service/internal/otel"
)

var (
	sessionProvisionAttempts metric.Int64Counter
	sessionProvisionSuccess  metric.Int64Counter
	sessionProvisionFailed   metric.Int64Counter

	tokensIssued metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("rooms.service", intotel.PrefixRooms)

	f.Int64Counter(&sessionProvisionAttempts, "session.provision.attempts",
		metric.WithDescription("Total external session provisioning attempts"))

	f.Int64Counter(&sessionProvisionSuccess, "session.provision.success",
		metric.WithDescription("Successful external session provisionings"))

	f.Int64Counter(&sessionProvisionFailed, "session.provision.failed",
		metric.WithDescription("Failed external session provisionings"))

	f.Int64Counter(&tokensIssued, "token.issued",
		metric.WithDescription("Access tokens minted for join requests"))
}
