package auth

import (
	"context"
	"errors"
	"fmt"

	"movieswipe-auth/internal/logger"
	"movieswipe-auth/internal/user"
)

// TokenVerifier is the provider boundary the service depends on.
// Declared here so the service owns its contract; the google package
// implements it.
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*Identity, error)
}

// TokenSigner mints the first-party session credential.
type TokenSigner interface {
	Sign(userID string) (string, error)
}

// Result is what a successful authentication returns to the wire layer.
type Result struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// Service is the session issuer: it exchanges a verified Google identity
// for a local user plus a signed session token. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	verifier TokenVerifier
	users    user.Store
	signer   TokenSigner
}

func NewService(
	verifier TokenVerifier,
	users user.Store,
	signer TokenSigner,
) *Service {
	return &Service{
		verifier: verifier,
		users:    users,
		signer:   signer,
	}
}

// Authenticate runs the token exchange flow: verify the Google ID token,
// find or create the local user, mint a session token. The store is never
// touched for a token that fails verification. Repeat calls for the same
// subject are idempotent — an existing user's profile fields are kept
// as first seen, never refreshed from newer claims.
func (s *Service) Authenticate(
	ctx context.Context,
	rawIDToken string,
) (*Result, error) {

	identity, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		// Already classified as ErrInvalidToken by the verifier.
		return nil, err
	}

	u, err := s.users.FindByGoogleID(ctx, identity.GoogleID)
	if errors.Is(err, user.ErrNotFound) {
		u, err = s.users.Create(ctx, user.NewUser{
			GoogleID: identity.GoogleID,
			Email:    identity.Email,
			Name:     identity.Name,
		})
		if err == nil {
			logger.Info("user created", map[string]any{
				"user_id": u.ID,
			})
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserProvisioning, err)
	}

	tok, err := s.signer.Sign(u.ID)
	if err != nil {
		// Not classified: signing failure is an internal fault handled
		// by the catch-all boundary, not a provisioning error.
		return nil, err
	}

	return &Result{Token: tok, User: u}, nil
}
