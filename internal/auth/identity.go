package auth

// Identity is the verified claim set extracted from a Google ID token.
// It contains facts only, no decisions, and must never be built from
// unverified input — the only constructor site is the token verifier,
// after signature and audience checks have passed.
type Identity struct {
	GoogleID string // provider-scoped stable subject identifier (sub)
	Email    string
	Name     string
}
