package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formrequest/pkg/validator"
)

type member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

// memberStore keeps members in memory and answers unique:users,email
// lookups when Postgres is disabled.
type memberStore struct {
	mu      sync.RWMutex
	members []member
}

func newMemberStore() *memberStore {
	return &memberStore{}
}

func (s *memberStore) Add(name, email, plan string) member {
	m := member{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Plan:      plan,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, m)
	return m
}

// List returns up to limit members on plan (any plan when empty) starting
// at offset, and the number of matching members.
func (s *memberStore) List(plan string, offset, limit int) ([]member, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]member, 0, len(s.members))
	for _, m := range s.members {
		if plan == "" || m.Plan == plan {
			matched = append(matched, m)
		}
	}

	total := len(matched)
	if offset >= total {
		return []member{}, total
	}
	return matched[offset:min(offset+limit, total)], total
}

func (s *memberStore) Exists(_ context.Context, q validator.TableQuery) (bool, error) {
	if q.Table != "users" || q.Column != "email" {
		return false, fmt.Errorf("memberStore: unsupported lookup %s.%s", q.Table, q.Column)
	}
	email, _ := q.Value.(string)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if strings.EqualFold(m.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
