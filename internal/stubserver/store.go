package stubserver

import (
	"sync"
	"time"

	"uadm/internal/domain"
	"github.com/google/uuid"
)

// User is one seeded backend account. Password is kept in the clear;
// this server is a lab peer, not a product.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	LastLogin time.Time
	Status    domain.AccountStatus
}

type userStore struct {
	mu    sync.RWMutex
	users map[string]*User
	order []string
}

func newUserStore(seed []User) *userStore {
	s := &userStore{users: map[string]*User{}}
	for i := range seed {
		record := seed[i]
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		if record.Status == "" {
			record.Status = domain.StatusActive
		}
		s.users[record.ID] = &record
		s.order = append(s.order, record.ID)
	}

	return s
}

func (s *userStore) byEmail(email string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if s.users[id].Email == email {
			record := *s.users[id]
			return &record, true
		}
	}

	return nil, false
}

func (s *userStore) byID(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.users[id]
	if !ok {
		return nil, false
	}
	out := *record

	return &out, true
}

func (s *userStore) list() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.users[id])
	}

	return out
}

func (s *userStore) create(name, email, password string) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if s.users[id].Email == email {
			return nil, false
		}
	}

	record := &User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
		Status:   domain.StatusActive,
	}
	s.users[record.ID] = record
	s.order = append(s.order, record.ID)
	out := *record

	return &out, true
}

func (s *userStore) touchLogin(id string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record, ok := s.users[id]; ok {
		record.LastLogin = at
	}
}

// setStatus applies a status to every listed id and reports how many rows
// actually existed.
func (s *userStore) setStatus(ids []string, status domain.AccountStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for _, id := range ids {
		if record, ok := s.users[id]; ok {
			record.Status = status
			updated++
		}
	}

	return updated
}

func (s *userStore) remove(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if _, ok := s.users[id]; ok {
			delete(s.users, id)
			removed++
		}
	}

	if removed > 0 {
		kept := s.order[:0]
		for _, id := range s.order {
			if _, ok := s.users[id]; ok {
				kept = append(kept, id)
			}
		}
		s.order = kept
	}

	return removed
}
