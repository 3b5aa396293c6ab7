package user

import "strings"

type Role string

const (
	RoleCustomer     Role = "customer"
	RoleAdmin        Role = "admin"
	RoleBrandPartner Role = "brand-partner"
)

// Reserved demo accounts whose role ignores the one picked on the form.
const (
	AdminEmail = "admin@stylesphere.com"
	BrandEmail = "brand@stylesphere.com"
)

const (
	DefaultPhone      = "+1 (555) 123-4567"
	DefaultAddress    = "123 Fashion Avenue"
	DefaultCity       = "New York"
	DefaultPostalCode = "10001"
	DefaultCountry    = "United States"
	DefaultBrandName  = "My Brand"
)

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleBrandPartner:
		return Role(s)
	default:
		return RoleCustomer
	}
}

type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	BrandName  string `json:"brandName,omitempty"`
}

// Sanitized drops the password hash before the user leaves the package.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Form is what the sign-in and sign-up screens submit.
type Form struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	BrandName  string `json:"brandName"`
}

// ProfileUpdate carries the editable profile fields; empty fields are left as is.
type ProfileUpdate struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (p ProfileUpdate) Apply(u User) User {
	if v := strings.TrimSpace(p.Name); v != "" {
		u.Name = v
	}
	if v := strings.TrimSpace(p.Phone); v != "" {
		u.Phone = v
	}
	if v := strings.TrimSpace(p.Address); v != "" {
		u.Address = v
	}
	if v := strings.TrimSpace(p.City); v != "" {
		u.City = v
	}
	if v := strings.TrimSpace(p.PostalCode); v != "" {
		u.PostalCode = v
	}
	if v := strings.TrimSpace(p.Country); v != "" {
		u.Country = v
	}
	return u
}

type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderInstagram Provider = "instagram"
)

func (p Provider) Valid() bool {
	return p == ProviderGoogle || p == ProviderInstagram
}
