package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pickup/internal/adapters/out/identity"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	ErrInvalidToken = errors.New("access token is invalid")

	jwtSigningMethod = jwt.SigningMethodHS256
)

// AccessTokenClaims is the bearer token issued by the sign-in service.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens and binds the user to the request.
type Authenticator struct {
	secret []byte
	issuer string
	log    *logger.Logger
}

func NewAuthenticator(secret, issuer string, log *logger.Logger) Authenticator {
	if log == nil {
		log = logger.Nop()
	}
	return Authenticator{
		secret: []byte(secret),
		issuer: issuer,
		log:    log,
	}
}

// IssueToken signs a token for userID valid for ttl from now.
func (a Authenticator) IssueToken(userID kernel.UUID, now time.Time, ttl time.Duration) (string, error) {
	if len(a.secret) == 0 {
		return "", errors.New("jwt secret is required")
	}
	if err := userID.Validate(); err != nil {
		return "", err
	}

	claims := AccessTokenClaims{
		UserID: userID.Bytes(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseToken validates the token and returns the user it was issued for.
func (a Authenticator) ParseToken(tokenString string) (kernel.UUID, error) {
	claims := &AccessTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return a.secret, nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := kernel.UUIDFromBytes(claims.UserID[:])
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return userID, nil
}

// Middleware binds the bearer token's user to the request context.
// Requests without a token continue anonymously; a bad token is rejected.
func (a Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return writeError(c, ErrInvalidToken)
			}

			userID, err := a.ParseToken(strings.TrimSpace(token))
			if err != nil {
				a.log.Warn(c.Request().Context(), err.Error())
				return writeError(c, err)
			}

			ctx := identity.WithUser(c.Request().Context(), userID)
			ctx = a.log.WithUserID(ctx, userID.String())
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
