package mockdata

import (
	"github.com/shopspring/decimal"
	"github.com/wichananm65/stylesphere-storefront/internal/checkout"
	"github.com/wichananm65/stylesphere-storefront/internal/notification"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
)

// Customers is the directory a sign-in email is matched against.
func Customers() []user.User {
	return []user.User{
		{
			ID:         "cust-1",
			Email:      "amara.okafor@email.com",
			Name:       "Amara Okafor",
			Role:       user.RoleCustomer,
			Phone:      "+234 801 234 5678",
			Address:    "15 Admiralty Way, Lekki Phase 1",
			City:       "Lagos",
			PostalCode: "101233",
			Country:    "Nigeria",
		},
		{
			ID:         "cust-2",
			Email:      "kwame.mensah@email.com",
			Name:       "Kwame Mensah",
			Role:       user.RoleCustomer,
			Phone:      "+233 24 123 4567",
			Address:    "8 Oxford Street, Osu",
			City:       "Accra",
			PostalCode: "GA-123",
			Country:    "Ghana",
		},
		{
			ID:         "cust-3",
			Email:      "zara.ahmed@email.com",
			Name:       "Zara Ahmed",
			Role:       user.RoleCustomer,
			Phone:      "+44 20 7946 0958",
			Address:    "42 Carnaby Street",
			City:       "London",
			PostalCode: "W1F 9PS",
			Country:    "United Kingdom",
		},
	}
}

// Orders is the customer-side order history, most recent first.
func Orders() []order.Order {
	return []order.Order{
		{
			ID:            "ord-1",
			OrderNumber:   "SS7K2M9P4Q",
			CustomerName:  "Amara Okafor",
			CustomerEmail: "amara.okafor@email.com",
			Total:         decimal.RequireFromString("439.98"),
			Status:        order.StatusShipped,
			RefundStatus:  order.RefundNone,
			Date:          "2026-02-08",
			Items:         2,
		},
		{
			ID:            "ord-2",
			OrderNumber:   "SS3X8B1N6D",
			CustomerName:  "Amara Okafor",
			CustomerEmail: "amara.okafor@email.com",
			Total:         decimal.RequireFromString("249.99"),
			Status:        order.StatusDelivered,
			RefundStatus:  order.RefundNone,
			Date:          "2026-01-22",
			Items:         1,
		},
		{
			ID:            "ord-3",
			OrderNumber:   "SS9F4H2J7L",
			CustomerName:  "Kwame Mensah",
			CustomerEmail: "kwame.mensah@email.com",
			Total:         decimal.RequireFromString("399.99"),
			Status:        order.StatusProcessing,
			RefundStatus:  order.RefundNone,
			Date:          "2026-02-09",
			Items:         1,
		},
	}
}

// NotificationLogs are the delivery records shown in the notification center.
func NotificationLogs() []notification.Log {
	return []notification.Log{
		{
			ID:          "log-1",
			Type:        notification.ChannelEmail,
			Recipient:   "amara.okafor@email.com",
			Subject:     "Order Confirmed",
			Message:     "Your order SS7K2M9P4Q has been confirmed.",
			Status:      notification.LogSent,
			Timestamp:   "2026-02-08 09:05 AM",
			OrderNumber: "SS7K2M9P4Q",
		},
		{
			ID:          "log-2",
			Type:        notification.ChannelSMS,
			Recipient:   "+234 801 234 5678",
			Subject:     "Order Shipped",
			Message:     "StyleSphere: order SS7K2M9P4Q is on its way.",
			Status:      notification.LogSent,
			Timestamp:   "2026-02-08 02:25 PM",
			OrderNumber: "SS7K2M9P4Q",
		},
		{
			ID:        "log-3",
			Type:      notification.ChannelEmail,
			Recipient: "amara.okafor@email.com",
			Subject:   "New Arrivals",
			Message:   "The Heritage Print Collection is back in stock.",
			Status:    notification.LogPending,
			Timestamp: "2026-02-09 11:00 AM",
		},
		{
			ID:          "log-4",
			Type:        notification.ChannelSMS,
			Recipient:   "+234 801 234 5678",
			Subject:     "Delivery Attempt",
			Message:     "StyleSphere: delivery for SS3X8B1N6D could not be completed.",
			Status:      notification.LogFailed,
			Timestamp:   "2026-01-24 04:10 PM",
			OrderNumber: "SS3X8B1N6D",
		},
		{
			ID:          "log-5",
			Type:        notification.ChannelEmail,
			Recipient:   "kwame.mensah@email.com",
			Subject:     "Order Confirmed",
			Message:     "Your order SS9F4H2J7L has been confirmed.",
			Status:      notification.LogSent,
			Timestamp:   "2026-02-09 08:30 AM",
			OrderNumber: "SS9F4H2J7L",
		},
	}
}

// PaymentMethods are the checkout options in display order.
func PaymentMethods() []checkout.PaymentMethod {
	return []checkout.PaymentMethod{
		{ID: checkout.MethodCard, Label: "Credit / Debit Card"},
		{ID: checkout.MethodPayPal, Label: "PayPal"},
		{ID: checkout.MethodCrypto, Label: "Cryptocurrency"},
	}
}
