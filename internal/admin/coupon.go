package admin

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExists   = errors.New("coupon code already exists")
)

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

type Coupon struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Discount    int             `json:"discount"`
	ExpiryDate  string          `json:"expiryDate"`
	IsActive    bool            `json:"isActive"`
	MinPurchase decimal.Decimal `json:"minPurchase"`
}

// CouponForm is what the "New Coupon" form submits. IsActive defaults to true.
type CouponForm struct {
	Code        string          `json:"code"`
	Discount    int             `json:"discount"`
	ExpiryDate  string          `json:"expiryDate"`
	IsActive    *bool           `json:"isActive"`
	MinPurchase decimal.Decimal `json:"minPurchase"`
}

func validateCoupon(f CouponForm) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Code) == "" {
		errs["code"] = "code is required"
	}
	if f.Discount < 0 || f.Discount > 100 {
		errs["discount"] = "discount must be between 0 and 100"
	}
	if f.ExpiryDate != "" {
		if _, err := time.Parse("2006-01-02", f.ExpiryDate); err != nil {
			errs["expiryDate"] = "expiryDate must be YYYY-MM-DD"
		}
	}
	if f.MinPurchase.IsNegative() {
		errs["minPurchase"] = "minPurchase must be >= 0"
	}
	return errs
}

type Coupons struct {
	mu      sync.RWMutex
	coupons []Coupon
}

func NewCoupons(seed []Coupon) *Coupons {
	return &Coupons{coupons: slices.Clone(seed)}
}

func (c *Coupons) List() []Coupon {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.coupons)
}

// Create stores a coupon under its upper-cased code.
func (c *Coupons) Create(f CouponForm) (Coupon, error) {
	if errs := validateCoupon(f); len(errs) > 0 {
		return Coupon{}, &ValidationError{Fields: errs}
	}
	coupon := Coupon{
		ID:          uuid.NewString(),
		Code:        strings.ToUpper(strings.TrimSpace(f.Code)),
		Discount:    f.Discount,
		ExpiryDate:  f.ExpiryDate,
		IsActive:    f.IsActive == nil || *f.IsActive,
		MinPurchase: f.MinPurchase,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.coupons {
		if existing.Code == coupon.Code {
			return Coupon{}, ErrCouponExists
		}
	}
	c.coupons = append(c.coupons, coupon)
	return coupon, nil
}

func (c *Coupons) Toggle(id string) (Coupon, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.coupons {
		if c.coupons[i].ID == id {
			c.coupons[i].IsActive = !c.coupons[i].IsActive
			return c.coupons[i], nil
		}
	}
	return Coupon{}, ErrCouponNotFound
}

func (c *Coupons) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, coupon := range c.coupons {
		if coupon.ID == id {
			c.coupons = slices.Delete(c.coupons, i, i+1)
			return nil
		}
	}
	return ErrCouponNotFound
}
