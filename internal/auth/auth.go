package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"cart-service/internal/entity"
)

// contextKey is where the middleware stores the parsed token.
const contextKey = "user"

var ErrMissingIdentity = errors.New("token carries no user id")

type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Middleware rejects requests without a valid HS256 bearer token.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(secret),
		SigningMethod: echojwt.AlgorithmHS256,
		ContextKey:    contextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(JwtCustomClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		},
	})
}

// IdentityFromContext returns the caller verified by Middleware.
func IdentityFromContext(c echo.Context) (entity.UserIdentity, error) {
	token, ok := c.Get(contextKey).(*jwt.Token)
	if !ok {
		return entity.UserIdentity{}, ErrMissingIdentity
	}
	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok || claims.UserID == "" {
		return entity.UserIdentity{}, ErrMissingIdentity
	}
	return entity.UserIdentity{UserID: claims.UserID}, nil
}

// IssueToken signs a token for userID that expires after ttl.
func IssueToken(secret, userID, email string, ttl time.Duration) (string, error) {
	claims := &JwtCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString([]byte(secret))
}
