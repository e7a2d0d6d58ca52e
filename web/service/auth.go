package service

import (
	"errors"
	"strings"
	"time"

	"portfolio/config"
	"portfolio/database/model"
	"portfolio/web/entity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the fixed lifetime of an issued bearer token. There is no
// refresh or revocation: a token stays valid until this window elapses.
const TokenValidity = 7 * 24 * time.Hour

// ErrInvalidToken is the single outcome for every verification failure.
// Malformed, tampered, and expired tokens are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid token")

// AuthService issues and verifies stateless HS256 bearer tokens. Nothing is
// stored server-side; the signing secret is the only shared state.
type AuthService struct {
	secret []byte
}

func NewAuthService() *AuthService {
	return &AuthService{
		secret: []byte(config.GetJWTSecret()),
	}
}

// IssueToken signs a token embedding the admin identity, valid for
// TokenValidity from now.
func (s *AuthService) IssueToken(admin *model.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       admin.Id,
		"username": admin.Username,
		"email":    admin.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenValidity).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken checks signature and expiry and returns the embedded identity.
// Every failure collapses to ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (*entity.TokenUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &entity.TokenUser{
		Id:       int(id),
		Username: username,
		Email:    email,
	}, nil
}

// ExtractBearerToken reads the token from the Authorization header. It
// returns the empty string when the header is absent or not a bearer scheme.
func ExtractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}
