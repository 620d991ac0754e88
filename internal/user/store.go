// Package user provides the in-memory store of application users.
// Users act as the holder identity for seat locks and bookings.
package user

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// ErrEmailExists is returned when registering an email that is
// already taken.  Handlers should translate this into an HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// Store keeps users in memory, indexed by ID and by email.
type Store struct {
	mu      sync.RWMutex
	byID    map[uint64]*model.User
	byEmail map[string]uint64
	nextID  uint64
}

// NewStore returns an empty user store.
func NewStore() *Store {
	return &Store{
		byID:    make(map[uint64]*model.User),
		byEmail: make(map[string]uint64),
	}
}

// Create registers a new user with a bcrypt-hashed password and
// returns it.  Emails are stored lower-cased and must be unique.
func (s *Store) Create(name, email, password, role string, bcryptCost int) (*model.User, error) {
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[email]; taken {
		return nil, ErrEmailExists
	}
	s.nextID++
	u := &model.User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	s.byID[u.ID] = u
	s.byEmail[email] = u.ID
	return u, nil
}

// GetByEmail returns the user registered under the email.
func (s *Store) GetByEmail(email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.byID[id], nil
}

// GetByID returns the user with the given ID.
func (s *Store) GetByID(id uint64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}
