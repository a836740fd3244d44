package primary

// AdminTokenService issues and checks the bearer tokens that guard the submissions listing.
type AdminTokenService interface {
	// Enabled is false when no signing secret is configured; the listing is then open.
	Enabled() bool
	GenerateToken() (string, error)
	VerifyToken(token string) error
}
