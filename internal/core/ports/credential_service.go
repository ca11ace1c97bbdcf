package ports

import "github.com/golang-jwt/jwt/v5"

// TokenData is the payload bound into every issued token. The user id is the
// minimum contract required by the authentication path.
type TokenData struct {
	ID int64
}

// CredentialService owns password hashing and the bearer-token lifecycle.
type CredentialService interface {
	HashPassword(plain string) (string, error)
	CompareHash(plain, hash string) bool
	GenerateToken(data TokenData) (string, error)
	// ValidateToken verifies signature, format and expiry. It fails with
	// domain.ErrTokenInvalid on any malformed, expired or mis-signed token.
	ValidateToken(token string) (jwt.MapClaims, error)
	// ExtractTokenData decodes a validated payload back into TokenData.
	ExtractTokenData(claims jwt.MapClaims) (TokenData, error)
}
