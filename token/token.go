package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// ErrInvalidToken indicates the token failed verification: bad signature,
// expired, malformed, or presented against the wrong signing context.
var ErrInvalidToken = errors.New("invalid token")

// Context selects one of the independently configured signing contexts.
// Each context has its own secret and expiry; admin contexts additionally
// stamp and require a discriminator claim so a tenant token is rejected by
// the admin verify path even if the secrets were ever misconfigured to match.
type Context int

const (
	TenantAccess Context = iota
	TenantRefresh
	AdminAccess
	AdminRefresh
	EmailVerify
)

func (c Context) String() string {
	switch c {
	case TenantAccess:
		return "tenant-access"
	case TenantRefresh:
		return "tenant-refresh"
	case AdminAccess:
		return "admin-access"
	case AdminRefresh:
		return "admin-refresh"
	case EmailVerify:
		return "email-verify"
	}
	return "unknown"
}

func (c Context) admin() bool {
	return c == AdminAccess || c == AdminRefresh
}

// Config is the per-context signing configuration.
type Config struct {
	Secret    string
	ExpiresIn time.Duration
}

// Claims is the payload carried by every token this service signs.
// RoleID is set on tenant access tokens, TokenID on refresh tokens.
type Claims struct {
	Subject string
	Email   string
	RoleID  string
	TokenID string
}

const adminDiscriminator = "admin"

// Issuer signs and verifies claim sets for all configured contexts.
// Read-only after construction; safe for concurrent use.
type Issuer struct {
	contexts map[Context]Config
}

// NewIssuer fails when any context is missing its secret. A missing secret is
// a fatal misconfiguration, not a runtime condition.
func NewIssuer(contexts map[Context]Config) (*Issuer, error) {
	all := []Context{TenantAccess, TenantRefresh, AdminAccess, AdminRefresh, EmailVerify}
	configured := make(map[Context]Config, len(all))
	for _, c := range all {
		cfg, ok := contexts[c]
		if !ok || cfg.Secret == "" {
			return nil, fmt.Errorf("token: missing secret for %s context", c)
		}
		if cfg.ExpiresIn <= 0 {
			return nil, fmt.Errorf("token: non-positive expiry for %s context", c)
		}
		configured[c] = cfg
	}
	return &Issuer{contexts: configured}, nil
}

// ExpiresIn reports the configured lifetime for a context. Used by callers
// that persist token records or set cookie lifetimes.
func (i *Issuer) ExpiresIn(c Context) time.Duration {
	return i.contexts[c].ExpiresIn
}

// Issue signs claims under the given context. Pure computation; the only
// failure mode beyond construction is a claim set the builder rejects.
func (i *Issuer) Issue(c Context, claims Claims) (string, error) {
	cfg, ok := i.contexts[c]
	if !ok {
		return "", fmt.Errorf("token: unknown context %s", c)
	}

	now := time.Now()
	builder := jwt.NewBuilder().
		Subject(claims.Subject).
		IssuedAt(now).
		Expiration(now.Add(cfg.ExpiresIn)).
		Claim("email", claims.Email)
	if claims.RoleID != "" {
		builder = builder.Claim("role", claims.RoleID)
	}
	if claims.TokenID != "" {
		builder = builder.JwtID(claims.TokenID)
	}
	if c.admin() {
		builder = builder.Claim("type", adminDiscriminator)
	}

	tok, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("failed to build %s token: %w", c, err)
	}
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256(), []byte(cfg.Secret)))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", c, err)
	}
	return string(signed), nil
}

// Verify checks signature and expiry under the given context and enforces the
// admin discriminator both ways: admin contexts require it, the others reject
// tokens that carry it.
func (i *Issuer) Verify(c Context, raw string) (Claims, error) {
	cfg, ok := i.contexts[c]
	if !ok {
		return Claims{}, fmt.Errorf("token: unknown context %s", c)
	}

	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256(), []byte(cfg.Secret)),
		jwt.WithValidate(true))
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var tokenType string
	tok.Get("type", &tokenType)
	if c.admin() && tokenType != adminDiscriminator {
		return Claims{}, fmt.Errorf("%w: admin only", ErrInvalidToken)
	}
	if !c.admin() && tokenType == adminDiscriminator {
		return Claims{}, ErrInvalidToken
	}

	subject, ok := tok.Subject()
	if !ok || subject == "" {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{Subject: subject}
	tok.Get("email", &claims.Email)
	tok.Get("role", &claims.RoleID)
	if jti, ok := tok.JwtID(); ok {
		claims.TokenID = jti
	}
	return claims, nil
}
