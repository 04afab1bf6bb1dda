package model

// TokenManager issues and validates session tokens.
type TokenManager interface {
	GenerateSessionToken(identity Identity) (string, error)
	ParseSessionToken(token string) (Identity, error)
}
