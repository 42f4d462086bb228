package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UIDHeader is the header the frontend sets with the Firebase user id.
const UIDHeader = "X-Firebase-UID"

// Provider resolves the calling user's identity. The backend runs no session
// layer of its own: deployments either trust the uid header as sent by the
// frontend, or verify a signed token. Services depend only on this interface
// so the two can be swapped without touching them.
type Provider interface {
	UID(c *gin.Context) (string, error)
}

// HeaderProvider trusts the uid header as-is. This matches the original
// contract where the caller-supplied identifier is not verified.
type HeaderProvider struct {
	// Header overrides the header name; empty means UIDHeader.
	Header string
}

func (p HeaderProvider) UID(c *gin.Context) (string, error) {
	name := p.Header
	if name == "" {
		name = UIDHeader
	}
	uid := strings.TrimSpace(c.GetHeader(name))
	if uid == "" {
		return "", fmt.Errorf("missing %s header", name)
	}
	return uid, nil
}

// JWTProvider verifies an HS256 bearer token and reads the user id from its
// claims, preferring UIDClaim and falling back to the standard subject.
type JWTProvider struct {
	Secret   string
	UIDClaim string // defaults to "uid"
}

func (p JWTProvider) UID(c *gin.Context) (string, error) {
	authz := c.GetHeader("Authorization")
	if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return "", errors.New("missing or invalid authorization header")
	}
	tokenStr := strings.TrimSpace(authz[len("Bearer "):])

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(p.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claimName := p.UIDClaim
	if claimName == "" {
		claimName = "uid"
	}
	if uid, _ := claims[claimName].(string); uid != "" {
		return uid, nil
	}
	if sub, _ := claims["sub"].(string); sub != "" {
		return sub, nil
	}
	return "", errors.New("token has no user id claim")
}
