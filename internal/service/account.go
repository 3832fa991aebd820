package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stpnv0/RidePooler/internal/domain"
	"github.com/stpnv0/RidePooler/internal/service/ports"
)

const bcryptCost = 12

// Bcrypt отклоняет пароли длиннее 72 байт.
const maxPasswordLen = 72

type AccountService struct {
	accounts   ports.AccountRepo
	sessions   ports.SessionRepo
	sessionTTL time.Duration

	now func() time.Time
}

func NewAccountService(accounts ports.AccountRepo, sessions ports.SessionRepo, sessionTTL time.Duration) *AccountService {
	return &AccountService{
		accounts:   accounts,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (s *AccountService) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.Account, *domain.Session, error) {
	if input.Username == "" || input.Email == "" {
		return nil, nil, fmt.Errorf("%w: username and email are required", domain.ErrValidation)
	}
	if input.Password == "" || len(input.Password) > maxPasswordLen {
		return nil, nil, fmt.Errorf("%w: password must be 1-%d bytes", domain.ErrValidation, maxPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:             uuid.New().String(),
		Username:       input.Username,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordHash:   hash,
		Salary:         input.Salary,
		AccountLevel:   0,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.now().UTC(),
	}
	if err = s.accounts.Create(ctx, account); err != nil {
		return nil, nil, fmt.Errorf("create account: %w", err)
	}

	session, err := s.issueSession(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}

	return account, session, nil
}

func (s *AccountService) SignIn(ctx context.Context, email, password string) (*domain.Account, *domain.Session, error) {
	if email == "" || password == "" || len(password) > maxPasswordLen {
		return nil, nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if err = bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, nil, domain.ErrWrongPassword
		}
		return nil, nil, fmt.Errorf("compare password: %w", err)
	}

	session, err := s.issueSession(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}

	return account, session, nil
}

func (s *AccountService) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AccountService) Validate(ctx context.Context, token string) (string, error) {
	return s.sessions.Validate(ctx, token, s.now().UTC())
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *AccountService) UpdateSalary(ctx context.Context, accountID string, salary int64) error {
	if salary < 0 {
		return fmt.Errorf("%w: salary must not be negative", domain.ErrValidation)
	}
	return s.accounts.UpdateSalary(ctx, accountID, salary)
}

// SweepSessions drops expired tokens; called from the scheduler alongside
// the matcher's lifecycle sweep.
func (s *AccountService) SweepSessions(ctx context.Context) (int, error) {
	return s.sessions.DeleteExpired(ctx, s.now().UTC())
}

func (s *AccountService) issueSession(ctx context.Context, accountID string) (*domain.Session, error) {
	now := s.now().UTC()
	session := &domain.Session{
		Token:     uuid.New().String(),
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}
