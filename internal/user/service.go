package user

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Directory() []User {
	users := s.repo.List()
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users
}

// Login resolves a sign-in form. A directory match wins over the form
// contents; accounts registered with a password must present it.
func (s *Service) Login(form Form) (User, error) {
	email := strings.TrimSpace(form.Email)
	if email == "" {
		return User{}, ErrEmailRequired
	}

	stored, err := s.repo.GetByEmail(email)
	switch err {
	case nil:
		if stored.Password != "" {
			if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(form.Password)) != nil {
				return User{}, ErrInvalidCredentials
			}
		}
		return stored.Sanitized(), nil
	case ErrNotFound:
		return fromForm(form), nil
	default:
		return User{}, err
	}
}

// Register adds the form as a new directory entry.
func (s *Service) Register(form Form) (User, error) {
	if strings.TrimSpace(form.Email) == "" {
		return User{}, ErrEmailRequired
	}
	if _, err := s.repo.GetByEmail(form.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	user := fromForm(form)
	if form.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		user.Password = string(hashed)
	}

	created, err := s.repo.Create(user)
	if err != nil {
		return User{}, err
	}
	return created.Sanitized(), nil
}

// SocialLogin simulates an OAuth round trip with the given provider.
func (s *Service) SocialLogin(provider Provider, role string) (User, error) {
	if !provider.Valid() {
		return User{}, ErrUnknownProvider
	}
	return User{
		ID:         uuid.NewString(),
		Email:      fmt.Sprintf("user@%s.com", provider),
		Name:       fmt.Sprintf("%s User", provider),
		Role:       ParseRole(role),
		Phone:      DefaultPhone,
		Address:    DefaultAddress,
		City:       DefaultCity,
		PostalCode: DefaultPostalCode,
		Country:    DefaultCountry,
	}, nil
}

// UpdateProfile applies upd to u and writes it back to the directory when u
// has an entry there.
func (s *Service) UpdateProfile(u User, upd ProfileUpdate) (User, error) {
	updated := upd.Apply(u)
	stored, err := s.repo.Update(u.Email, updated)
	switch err {
	case nil:
		return stored.Sanitized(), nil
	case ErrNotFound:
		return updated.Sanitized(), nil
	default:
		return User{}, err
	}
}

func fromForm(form Form) User {
	email := strings.TrimSpace(form.Email)
	role := ParseRole(form.Role)
	switch strings.ToLower(email) {
	case AdminEmail:
		role = RoleAdmin
	case BrandEmail:
		role = RoleBrandPartner
	}

	u := User{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       orDefault(form.Name, strings.Split(email, "@")[0]),
		Role:       role,
		Phone:      orDefault(form.Phone, DefaultPhone),
		Address:    orDefault(form.Address, DefaultAddress),
		City:       orDefault(form.City, DefaultCity),
		PostalCode: orDefault(form.PostalCode, DefaultPostalCode),
		Country:    orDefault(form.Country, DefaultCountry),
	}
	if role == RoleBrandPartner {
		u.BrandName = orDefault(form.BrandName, DefaultBrandName)
	}
	return u
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
