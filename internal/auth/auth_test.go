package auth

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAppWithIssuer(t *testing.T, i *Issuer) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(i.Middleware())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		claims, err := FromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		return c.JSON(fiber.Map{"sid": claims.SessionID, "userId": claims.UserID, "role": claims.Role})
	})
	return app
}

func TestNewIssuer_RequiresSecret(t *testing.T) {
	_, err := NewIssuer("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssue_RoundTripThroughMiddleware(t *testing.T) {
	i, err := NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	app := makeAppWithIssuer(t, i)

	cases := []struct {
		name   string
		userID string
		role   string
	}{
		{name: "guest"},
		{name: "customer", userID: "u-1", role: "customer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := i.Issue("s-1", tc.userID, tc.role)
			require.NoError(t, err)

			req := httptest.NewRequest("GET", "/whoami", nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			res, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, res.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, "s-1", body["sid"])
			assert.Equal(t, tc.userID, body["userId"])
			assert.Equal(t, tc.role, body["role"])
		})
	}
}

func TestMiddleware_Rejects(t *testing.T) {
	i, _ := NewIssuer("test-secret", time.Hour)
	other, _ := NewIssuer("other-secret", time.Hour)
	expired, _ := NewIssuer("test-secret", -time.Minute)
	app := makeAppWithIssuer(t, i)

	res, _ := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	forged, _ := other.Issue("s-1", "", "")
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	res, _ = app.Test(req)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	stale, _ := expired.Issue("s-1", "", "")
	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+stale)
	res, _ = app.Test(req)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestFromCtx_MissingLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := GetSessionIDFromCtx(c)
		assert.ErrorIs(t, err, fiber.ErrUnauthorized)
		return c.SendStatus(fiber.StatusNoContent)
	})
	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
}
