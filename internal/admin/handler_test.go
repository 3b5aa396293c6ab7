package admin

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
)

func makeAppWithAdminHandler() *fiber.App {
	h := NewHandler(
		NewInventory(SeedInventory()),
		NewCoupons(SeedCoupons()),
		order.NewService(order.NewInMemoryRepository(SeedOrderQueue())),
		NewSettingsStore(DefaultSettings(), time.Second),
	)
	app := fiber.New()
	h.RegisterRoutes(app.Group("/api/v1/admin"))
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestAdminInventoryRoutes(t *testing.T) {
	app := makeAppWithAdminHandler()

	code, body := send(t, app, "POST", "/api/v1/admin/inventory", `{"name":"Kente Scarf","price":"45.00","stockQuantity":30}`)
	if code != fiber.StatusCreated || !strings.Contains(body, "Kente Scarf") {
		t.Fatalf("unexpected create %d: %s", code, body)
	}

	code, body = send(t, app, "PATCH", "/api/v1/admin/inventory/2", `{"discountPercentage":-5}`)
	if code != fiber.StatusBadRequest || !strings.Contains(body, "discountPercentage") {
		t.Fatalf("expected validation error, got %d: %s", code, body)
	}

	code, _ = send(t, app, "DELETE", "/api/v1/admin/inventory/missing", "")
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestAdminOrderQueueRoutes(t *testing.T) {
	app := makeAppWithAdminHandler()

	code, body := send(t, app, "GET", "/api/v1/admin/orders/refunds", "")
	if code != fiber.StatusOK || !strings.Contains(body, "MT3H7K9L") || strings.Contains(body, "MT8A4F2G") {
		t.Fatalf("unexpected refund list %d: %s", code, body)
	}

	code, body = send(t, app, "POST", "/api/v1/admin/orders/2/refund/approve", "")
	if code != fiber.StatusOK || !strings.Contains(body, `"refundStatus":"Approved"`) {
		t.Fatalf("unexpected approve %d: %s", code, body)
	}

	code, _ = send(t, app, "POST", "/api/v1/admin/orders/2/refund/deny", "")
	if code != fiber.StatusConflict {
		t.Fatalf("expected 409 once resolved, got %d", code)
	}

	code, body = send(t, app, "PUT", "/api/v1/admin/orders/1/status", `{"status":"Shipped"}`)
	if code != fiber.StatusOK || !strings.Contains(body, `"status":"Shipped"`) {
		t.Fatalf("unexpected status change %d: %s", code, body)
	}

	code, _ = send(t, app, "PUT", "/api/v1/admin/orders/1/status", `{"status":"Lost"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", code)
	}
}

func TestAdminSettingsRoutes(t *testing.T) {
	app := makeAppWithAdminHandler()

	code, body := send(t, app, "GET", "/api/v1/admin/settings", "")
	if code != fiber.StatusOK || !strings.Contains(body, `"saved":false`) {
		t.Fatalf("unexpected settings %d: %s", code, body)
	}

	payload := `{"shippingPolicy":"Ships in 3 days","refundPolicy":"30 days","storeHours":"9-5","freeShippingThreshold":"120","standardShippingFee":"8","expressShippingFee":"20"}`
	code, body = send(t, app, "PUT", "/api/v1/admin/settings", payload)
	if code != fiber.StatusOK || !strings.Contains(body, `"saved":true`) {
		t.Fatalf("unexpected save %d: %s", code, body)
	}
}
