package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints and parses first-party session tokens. Tokens are signed,
// not encrypted: contents are tamper-evident, not confidential. The only
// claim is the user id — the server keeps no session state, validity is
// decided entirely by the signature.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign issues a session token bound to the given user id.
func (s *Signer) Sign(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("token: user id is required")
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: userID,
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: signing failed: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and returns the embedded user id.
func (s *Signer) Parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("token: parse failed: %w", err)
	}

	if claims.Subject == "" {
		return "", errors.New("token: missing subject")
	}
	return claims.Subject, nil
}
