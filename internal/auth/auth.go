// Package auth issues and reads the session tokens every storefront call carries.
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	claimSession = "sid"
	claimUser    = "user_id"
	claimRole    = "role"
)

var ErrMissingSecret = errors.New("jwt secret is empty")

// Claims is the decoded view of a session token.
type Claims struct {
	SessionID string
	UserID    string
	Role      string
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the session. userID and role are empty for guests.
func (i *Issuer) Issue(sessionID, userID, role string) (string, error) {
	claims := jwt.MapClaims{
		claimSession: sessionID,
		"exp":        time.Now().Add(i.ttl).Unix(),
	}
	if userID != "" {
		claims[claimUser] = userID
		claims[claimRole] = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Middleware validates the bearer token and stores it under c.Locals("user").
func (i *Issuer) Middleware() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    i.secret,
		SigningMethod: "HS256",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
}

// FromCtx reads the claims stored by Middleware.
func FromCtx(c *fiber.Ctx) (Claims, error) {
	u := c.Locals("user")
	if u == nil {
		return Claims{}, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return Claims{}, fiber.ErrUnauthorized
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fiber.ErrUnauthorized
	}

	sid, _ := mc[claimSession].(string)
	if sid == "" {
		return Claims{}, fiber.ErrUnauthorized
	}
	uid, _ := mc[claimUser].(string)
	role, _ := mc[claimRole].(string)
	return Claims{SessionID: sid, UserID: uid, Role: role}, nil
}

func GetSessionIDFromCtx(c *fiber.Ctx) (string, error) {
	claims, err := FromCtx(c)
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}
