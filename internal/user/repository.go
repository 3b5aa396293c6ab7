package user

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrEmailRequired      = errors.New("email is required")
	ErrUnknownProvider    = errors.New("unknown social provider")
)

// Repository is the customer directory consulted at sign-in.
type Repository interface {
	List() []User
	GetByEmail(email string) (User, error)
	Create(user User) (User, error)
	Update(email string, user User) (User, error)
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users: make([]User, 0, len(seed)),
	}
	repo.users = append(repo.users, seed...)
	return repo
}

func (r *InMemoryRepository) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)
	return users
}

func (r *InMemoryRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Create(user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return User{}, ErrEmailExists
		}
	}

	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryRepository) Update(email string, userUpdate User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			// email and credentials are not editable
			userUpdate.ID = user.ID
			userUpdate.Email = user.Email
			userUpdate.Password = user.Password
			r.users[i] = userUpdate
			return userUpdate, nil
		}
	}

	return User{}, ErrNotFound
}
