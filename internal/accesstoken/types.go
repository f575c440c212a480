package accesstoken

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// Issuer mints short-lived credentials that authorize one identity to join
// one named video session. Expiry is the sole lifetime control; there is no
// revocation.
type Issuer interface {
	Issue(identity, roomName string) (string, error)
	Verify(tokenString string) (*Payload, error)
}

// Grants is the scope claim of a token: who the caller is and which room the
// token admits them to.
type Grants struct {
	Identity string     `json:"identity"`
	Video    VideoGrant `json:"video"`
}

type VideoGrant struct {
	Room string `json:"room"`
}

// Payload is the full token claim set, in the provider's federated-auth shape.
type Payload struct {
	Grants Grants `json:"grants"`
	jwt.RegisteredClaims
}

// Config carries the signing identity. The API key/secret pair is distinct
// from the account credentials used for session provisioning: a leaked token
// secret cannot create or destroy sessions.
type Config struct {
	AccountSID string `mapstructure:"account_sid"`
	APIKey     string `mapstructure:"api_key"`
	APISecret  string `mapstructure:"api_secret"`
	TTLSeconds int64  `mapstructure:"ttl_seconds"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("account_sid"), "")
	v.SetDefault(p("api_key"), "")
	v.SetDefault(p("api_secret"), "")
	v.SetDefault(p("ttl_seconds"), 3600)
}
