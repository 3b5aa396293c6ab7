// Package checkout implements the shipping, payment, confirm flow.
package checkout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/wichananm65/stylesphere-storefront/internal/user"
)

type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepConfirm  Step = "confirm"
)

var ErrWrongStep = errors.New("checkout is not at this step")

// ValidationError lists the offending fields of a submitted form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid fields: %s", strings.Join(keys, ", "))
}

type Shipping struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ShippingFor prefills the shipping form from the signed-in user.
func ShippingFor(u user.User) Shipping {
	return Shipping{
		FullName:   u.Name,
		Email:      u.Email,
		Address:    u.Address,
		City:       u.City,
		PostalCode: u.PostalCode,
		Country:    u.Country,
	}
}

func validateShipping(s Shipping) map[string]string {
	errs := map[string]string{}
	required := map[string]string{
		"fullName":   s.FullName,
		"email":      s.Email,
		"address":    s.Address,
		"city":       s.City,
		"postalCode": s.PostalCode,
		"country":    s.Country,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			errs[field] = field + " is required"
		}
	}
	if v := strings.TrimSpace(s.Email); v != "" && !strings.Contains(v, "@") {
		errs["email"] = "email is invalid"
	}
	return errs
}

type Method string

const (
	MethodCard   Method = "card"
	MethodPayPal Method = "paypal"
	MethodCrypto Method = "crypto"
)

// PaymentMethod is a selectable payment option with its display label.
type PaymentMethod struct {
	ID    Method `json:"id"`
	Label string `json:"label"`
}

type Payment struct {
	Method     Method `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

// Masked hides everything but the last four card digits.
func (p Payment) Masked() Payment {
	p.CVV = ""
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) > 4 {
		p.CardNumber = "**** " + digits[len(digits)-4:]
	}
	return p
}

func validatePayment(p Payment) map[string]string {
	errs := map[string]string{}
	switch p.Method {
	case MethodCard:
		if strings.TrimSpace(p.CardNumber) == "" {
			errs["cardNumber"] = "cardNumber is required"
		}
		if strings.TrimSpace(p.Expiry) == "" {
			errs["expiry"] = "expiry is required"
		}
		if strings.TrimSpace(p.CVV) == "" {
			errs["cvv"] = "cvv is required"
		}
	case MethodPayPal, MethodCrypto:
	default:
		errs["method"] = "method must be one of card, paypal, crypto"
	}
	return errs
}

// Flow is one checkout attempt. Steps only move forward.
type Flow struct {
	Step     Step     `json:"step"`
	Shipping Shipping `json:"shipping"`
	Payment  *Payment `json:"payment,omitempty"`
}

func NewFlow(u user.User) *Flow {
	return &Flow{Step: StepShipping, Shipping: ShippingFor(u)}
}

func (f *Flow) SubmitShipping(s Shipping) error {
	if f.Step != StepShipping {
		return ErrWrongStep
	}
	if errs := validateShipping(s); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	f.Shipping = s
	f.Step = StepPayment
	return nil
}

func (f *Flow) SubmitPayment(p Payment) error {
	if f.Step != StepPayment {
		return ErrWrongStep
	}
	if errs := validatePayment(p); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	masked := p.Masked()
	f.Payment = &masked
	f.Step = StepConfirm
	return nil
}

// ReadyToPlace reports whether the order can be placed.
func (f *Flow) ReadyToPlace() error {
	if f.Step != StepConfirm {
		return ErrWrongStep
	}
	return nil
}
