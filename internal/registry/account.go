package registry

import (
	"context"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type AccountStore struct {
	s *Store
}

func (as *AccountStore) Create(_ context.Context, a *domain.Account) error {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	for _, other := range as.s.accounts {
		if other.Username == a.Username {
			return domain.ErrUsernameTaken
		}
		if other.Email == a.Email {
			return domain.ErrEmailTaken
		}
	}

	cp := *a
	as.s.accounts[a.ID] = &cp
	return nil
}

func (as *AccountStore) GetByID(_ context.Context, id string) (*domain.Account, error) {
	as.s.mu.RLock()
	defer as.s.mu.RUnlock()

	a, ok := as.s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	cp := *a
	return &cp, nil
}

func (as *AccountStore) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	as.s.mu.RLock()
	defer as.s.mu.RUnlock()

	for _, a := range as.s.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (as *AccountStore) Exists(_ context.Context, id string) (bool, error) {
	as.s.mu.RLock()
	defer as.s.mu.RUnlock()

	_, ok := as.s.accounts[id]
	return ok, nil
}

func (as *AccountStore) UpdateSalary(_ context.Context, id string, salary int64) error {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	a, ok := as.s.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}

	a.Salary = salary
	return nil
}

type SessionStore struct {
	s *Store
}

func (ss *SessionStore) Create(_ context.Context, sess *domain.Session) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	cp := *sess
	ss.s.sessions[sess.Token] = &cp
	return nil
}

func (ss *SessionStore) Validate(_ context.Context, token string, now time.Time) (string, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()

	sess, ok := ss.s.sessions[token]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	if sess.Expired(now) {
		return "", domain.ErrSessionExpired
	}

	return sess.AccountID, nil
}

func (ss *SessionStore) Delete(_ context.Context, token string) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	delete(ss.s.sessions, token)
	return nil
}

func (ss *SessionStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	n := 0
	for token, sess := range ss.s.sessions {
		if sess.Expired(now) {
			delete(ss.s.sessions, token)
			n++
		}
	}
	return n, nil
}
