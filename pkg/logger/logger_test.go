package logx

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestRequestLogger_LogsHandledStatus(t *testing.T) {
	buf := captureLog(t)

	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}
		return c.Status(code).JSON(fiber.Map{"message": err.Error()})
	}})
	app.Use(RequestLogger())
	app.Use(recover.New())
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	cases := []struct {
		path string
		want int
	}{
		{"/missing", fiber.StatusNotFound},
		{"/boom", fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		buf.Reset()
		res, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.StatusCode)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, float64(tc.want), entry["status"], tc.path)
		assert.Equal(t, tc.path, entry["url"])
	}
}
