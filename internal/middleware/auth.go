package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/logger"
	"cashtrackr/internal/models"
	"cashtrackr/internal/services"
)

const (
	identityKey     = "identity"
	accessTokenType = "access"
	tokenIssuer     = "cashtrackr-api"
)

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Identity is the projection of the authenticated user attached to a request.
type Identity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer creates a TokenIssuer signing with secret; tokens live for ttl.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{key: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken generates a session token for a user.
func (i *TokenIssuer) GenerateToken(user *models.User) (string, error) {
	now := i.now()
	claims := &JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.key)
}

// Validate parses a session token and returns its claims. Tokens that are
// expired, signed with another key or algorithm, or not of the access type
// are rejected.
func (i *TokenIssuer) Validate(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.key, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != accessTokenType {
		return nil, fmt.Errorf("token type %q is not accepted", claims.TokenType)
	}
	return claims, nil
}

// AuthMiddleware verifies the bearer token and attaches the caller's identity.
// A valid token whose user no longer exists passes through without an
// identity; consumers then reject the request via CurrentUser.
func AuthMiddleware(issuer *TokenIssuer, users services.UserServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := issuer.Validate(parts[1])
		if err != nil {
			logger.Get().Debugw("rejected session token", "error", err.Error(), "path", c.Request.URL.Path)
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.Code == apperrors.ErrUserNotFound.Code {
				c.Next()
				return
			}
			abortWithError(c, err)
			return
		}

		c.Set(identityKey, Identity{ID: user.ID, Name: user.Name, Email: user.Email})
		c.Next()
	}
}

// CurrentUser returns the authenticated identity, or UNAUTHORIZED when the
// request carries none.
func CurrentUser(c *gin.Context) (Identity, error) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, apperrors.ErrUnauthorized
	}
	identity, ok := v.(Identity)
	if !ok {
		return Identity{}, apperrors.ErrUnauthorized
	}
	return identity, nil
}
