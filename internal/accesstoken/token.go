package accesstoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/mustang1105/twilio-service/internal/errors"
)

// contentType marks the token as a provider federated-auth credential; the
// hosted client SDK rejects tokens without it.
const contentType = "twilio-fpa;v=1"

const defaultTTL = 3600 * time.Second

// NewIssuer creates an issuer with the real clock.
func NewIssuer(cfg *Config) Issuer {
	return NewIssuerWithClock(cfg, clockwork.NewRealClock())
}

// NewIssuerWithClock allows injecting a fake clock in tests.
func NewIssuerWithClock(cfg *Config, clock clockwork.Clock) Issuer {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &issuerImpl{
		accountSID: cfg.AccountSID,
		apiKey:     cfg.APIKey,
		secret:     []byte(cfg.APISecret),
		ttl:        ttl,
		clock:      clock,
	}
}

type issuerImpl struct {
	accountSID string
	apiKey     string
	secret     []byte
	ttl        time.Duration
	clock      clockwork.Clock
}

func (i *issuerImpl) Issue(identity, roomName string) (string, error) {
	if identity == "" || roomName == "" {
		return "", errors.New(ErrInvalidRequest, "identity and roomName are required")
	}

	now := i.clock.Now()
	claims := &Payload{
		Grants: Grants{
			Identity: identity,
			Video:    VideoGrant{Room: roomName},
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        fmt.Sprintf("%s-%d", i.apiKey, now.Unix()),
			Issuer:    i.apiKey,
			Subject:   i.accountSID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["cty"] = contentType
	return token.SignedString(i.secret)
}

// Verify parses a token with strict algorithm validation. The service itself
// never consumes tokens; this exists for diagnostics and tests.
func (i *issuerImpl) Verify(tokenString string) (*Payload, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Payload{}, func(token *jwt.Token) (any, error) {
		if alg := token.Method.Alg(); alg != jwt.SigningMethodHS256.Alg() {
			return nil, errors.Newf(ErrInvalidToken, "unexpected signing method: %s", alg)
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.clock.Now))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err, "parse token")
	}

	if claims, ok := token.Claims.(*Payload); ok && token.Valid {
		if claims.Grants.Identity == "" || claims.Grants.Video.Room == "" {
			return nil, errors.New(ErrInvalidToken, "missing grant fields in token")
		}
		return claims, nil
	}
	return nil, ErrInvalidToken
}
