package mockdata

import (
	"testing"

	"github.com/wichananm65/stylesphere-storefront/internal/order"
)

func TestProducts_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	outOfStock := 0
	for _, p := range Products() {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true
		if p.OutOfStock() {
			outOfStock++
		}
	}
	if outOfStock == 0 {
		t.Fatalf("expected at least one out-of-stock product in the catalog")
	}
}

func TestOrders_MostRecentFirst(t *testing.T) {
	orders := Orders()
	for i := 1; i < len(orders); i++ {
		if orders[i].CustomerEmail != orders[i-1].CustomerEmail {
			continue
		}
		if orders[i].Date > orders[i-1].Date {
			t.Fatalf("orders for %s not sorted: %s before %s", orders[i].CustomerEmail, orders[i-1].Date, orders[i].Date)
		}
	}
	for _, o := range orders {
		if o.RefundStatus != order.RefundNone {
			t.Fatalf("seed order %s should start without a refund", o.ID)
		}
	}
}

func TestCustomers_HaveLogs(t *testing.T) {
	logs := NotificationLogs()
	for _, c := range Customers()[:1] {
		found := false
		for _, l := range logs {
			if l.Recipient == c.Email || l.Recipient == c.Phone {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected notification logs for %s", c.Email)
		}
	}
}
