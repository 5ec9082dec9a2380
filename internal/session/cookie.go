package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieCodec signs session ids into cookie values so a client cannot forge
// or guess another session's identifier.
type CookieCodec struct {
	secret []byte
	issuer string
}

func NewCookieCodec(secret string) *CookieCodec {
	return &CookieCodec{
		secret: []byte(secret),
		issuer: "demoshop",
	}
}

func (c *CookieCodec) Sign(sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Parse verifies the cookie value and returns the session id it carries.
func (c *CookieCodec) Parse(value string) (string, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(value, &claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", errors.New("invalid session cookie")
	}

	if claims.Issuer != c.issuer || claims.Subject == "" {
		return "", errors.New("invalid session cookie")
	}

	return claims.Subject, nil
}
