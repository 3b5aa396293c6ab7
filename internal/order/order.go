package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type RefundStatus string

const (
	RefundNone      RefundStatus = "None"
	RefundRequested RefundStatus = "Requested"
	RefundApproved  RefundStatus = "Approved"
	RefundDenied    RefundStatus = "Denied"
)

// DateLayout is the calendar-date format orders are stamped with.
const DateLayout = "2006-01-02"

// Order is a placed purchase. Items is the unit count across all lines.
type Order struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Total         decimal.Decimal `json:"total"`
	Status        Status          `json:"status"`
	RefundStatus  RefundStatus    `json:"refundStatus"`
	RefundReason  string          `json:"refundReason,omitempty"`
	Date          string          `json:"date"`
	Items         int             `json:"items"`
}

// TabStatuses maps a "My Orders" tab to the statuses it shows. "all" and
// unknown tabs return nil, which means no filter.
func TabStatuses(tab string) []Status {
	switch strings.ToLower(tab) {
	case "processing":
		return []Status{StatusProcessing}
	case "shipped":
		return []Status{StatusShipped}
	case "delivered":
		return []Status{StatusDelivered}
	default:
		return nil
	}
}
