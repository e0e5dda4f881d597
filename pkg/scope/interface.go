package scope

// Manager issues and verifies tokens.
type Manager interface {
	// CreateTokens issues a fresh access/refresh pair for s.
	CreateTokens(s Scope) (Tokens, error)
	// VerifyAccessToken validates an access token and returns its principal.
	VerifyAccessToken(token string) (Scope, error)
	// VerifyRefreshToken validates a refresh token and returns its principal.
	VerifyRefreshToken(token string) (Scope, error)
}
