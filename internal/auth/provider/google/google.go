package google

import (
	"context"
	"fmt"

	"movieswipe-auth/internal/auth"
	"movieswipe-auth/internal/logger"

	"github.com/coreos/go-oidc/v3/oidc"
)

const issuerURL = "https://accounts.google.com"

// Verifier validates Google ID tokens presented by clients after a
// native sign-in. There is no server-side code exchange: the client
// already holds the ID token and posts it directly.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

func New(ctx context.Context, clientID string) (*Verifier, error) {
	if clientID == "" {
		return nil, fmt.Errorf("google: client id is required")
	}

	oidcProvider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}

	return &Verifier{
		verifier: oidcProvider.Verifier(&oidc.Config{
			ClientID: clientID,
		}),
	}, nil
}

// Verify checks signature, audience, issuer and expiry against Google's
// published keys, then extracts the claims this service needs. Never log
// the raw token here.
func (v *Verifier) Verify(
	ctx context.Context,
	rawIDToken string,
) (*auth.Identity, error) {

	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		logger.Warn("google id_token verification failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: claims parse failed", auth.ErrInvalidToken)
	}

	return identityFromClaims(idToken.Subject, claims.Email, claims.Name)
}

// identityFromClaims enforces claim completeness: a token that verifies
// cryptographically but lacks email or name is still rejected as invalid.
func identityFromClaims(subject, email, name string) (*auth.Identity, error) {
	if subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", auth.ErrInvalidToken)
	}
	if email == "" || name == "" {
		return nil, fmt.Errorf(
			"%w: missing required user information",
			auth.ErrInvalidToken,
		)
	}

	return &auth.Identity{
		GoogleID: subject,
		Email:    email,
		Name:     name,
	}, nil
}
