package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghub/blog-platform/internal/core/domain"
	"github.com/bloghub/blog-platform/internal/core/ports"
)

// CredentialService implements password hashing and the HS256 token lifecycle.
// The signing secret is injected at construction, never read from ambient
// state; compromise of the secret compromises every issued token.
type CredentialService struct {
	jwtSecret string
	tokenTTL  time.Duration
}

func NewCredentialService(jwtSecret string, tokenTTL time.Duration) *CredentialService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &CredentialService{jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *CredentialService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *CredentialService) CompareHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateToken signs a token binding the user id.
func (s *CredentialService) GenerateToken(data ports.TokenData) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":  data.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies signature, format and expiry.
func (s *CredentialService) ValidateToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// ExtractTokenData decodes a validated payload back into TokenData. Numeric
// claims arrive as float64 after JSON decoding.
func (s *CredentialService) ExtractTokenData(claims jwt.MapClaims) (ports.TokenData, error) {
	raw, ok := claims["id"]
	if !ok {
		return ports.TokenData{}, domain.ErrTokenInvalid
	}

	switch id := raw.(type) {
	case float64:
		return ports.TokenData{ID: int64(id)}, nil
	case int64:
		return ports.TokenData{ID: id}, nil
	default:
		return ports.TokenData{}, domain.ErrTokenInvalid
	}
}
