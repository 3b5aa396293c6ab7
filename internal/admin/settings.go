package admin

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/stylesphere-storefront/internal/notification"
)

type Settings struct {
	ShippingPolicy        string          `json:"shippingPolicy"`
	RefundPolicy          string          `json:"refundPolicy"`
	StoreHours            string          `json:"storeHours"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	StandardShippingFee   decimal.Decimal `json:"standardShippingFee"`
	ExpressShippingFee    decimal.Decimal `json:"expressShippingFee"`
}

// SettingsView is the settings plus whether the "Saved!" badge is showing.
type SettingsView struct {
	Settings
	Saved bool `json:"saved"`
}

func validateSettings(s Settings) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(s.ShippingPolicy) == "" {
		errs["shippingPolicy"] = "shippingPolicy is required"
	}
	if strings.TrimSpace(s.RefundPolicy) == "" {
		errs["refundPolicy"] = "refundPolicy is required"
	}
	for field, v := range map[string]decimal.Decimal{
		"freeShippingThreshold": s.FreeShippingThreshold,
		"standardShippingFee":   s.StandardShippingFee,
		"expressShippingFee":    s.ExpressShippingFee,
	} {
		if v.IsNegative() {
			errs[field] = field + " must be >= 0"
		}
	}
	return errs
}

const savedKey = "settings"

type SettingsStore struct {
	mu      sync.RWMutex
	current Settings
	saved   *notification.Flash
}

func NewSettingsStore(initial Settings, savedFor time.Duration) *SettingsStore {
	return &SettingsStore{current: initial, saved: notification.NewFlash(savedFor)}
}

func (s *SettingsStore) Get() SettingsView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SettingsView{Settings: s.current, Saved: s.saved.Active(savedKey)}
}

// Save replaces the settings and raises the saved badge.
func (s *SettingsStore) Save(next Settings) (SettingsView, error) {
	if errs := validateSettings(next); len(errs) > 0 {
		return SettingsView{}, &ValidationError{Fields: errs}
	}
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	s.saved.Raise(savedKey)
	return s.Get(), nil
}
