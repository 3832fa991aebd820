package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
	"github.com/stpnv0/RidePooler/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAccountService(t *testing.T) (*AccountService, *mocks.MockAccountRepo, *mocks.MockSessionRepo) {
	t.Helper()
	accounts := mocks.NewMockAccountRepo(t)
	sessions := mocks.NewMockSessionRepo(t)

	svc := NewAccountService(accounts, sessions, 30*time.Minute)
	return svc, accounts, sessions
}

func TestAccountService_SignUp_Success(t *testing.T) {
	svc, accounts, sessions := newTestAccountService(t)

	var created *domain.Account
	accounts.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, a *domain.Account) {
		created = a
	}).Return(nil)
	sessions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	account, session, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		Salary:   120000,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice", account.Username)
	assert.NotEmpty(t, account.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword(account.PasswordHash, []byte("s3cret")))

	require.NotNil(t, session)
	assert.Equal(t, account.ID, session.AccountID)
	assert.True(t, session.ExpiresAt.After(session.CreatedAt))
}

func TestAccountService_SignUp_Validation(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	cases := []struct {
		name  string
		input domain.SignUpInput
	}{
		{"no username", domain.SignUpInput{Email: "a@b.c", Password: "x"}},
		{"no email", domain.SignUpInput{Username: "a", Password: "x"}},
		{"no password", domain.SignUpInput{Username: "a", Email: "a@b.c"}},
		{"password too long", domain.SignUpInput{Username: "a", Email: "a@b.c", Password: strings.Repeat("x", 73)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.SignUp(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAccountService_SignIn_Success(t *testing.T) {
	svc, accounts, sessions := newTestAccountService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	accounts.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.Account{
		ID:           "acc-1",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)
	sessions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	account, session, err := svc.SignIn(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
	assert.Equal(t, "acc-1", session.AccountID)
	assert.NotEmpty(t, session.Token)
}

func TestAccountService_SignIn_WrongPassword(t *testing.T) {
	svc, accounts, _ := newTestAccountService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	accounts.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.Account{
		ID:           "acc-1",
		PasswordHash: hash,
	}, nil)

	_, _, err = svc.SignIn(context.Background(), "alice@example.com", "nope")

	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestAccountService_SignIn_UnknownEmail(t *testing.T) {
	svc, accounts, _ := newTestAccountService(t)

	accounts.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrAccountNotFound)

	_, _, err := svc.SignIn(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountService_SignOut(t *testing.T) {
	svc, _, sessions := newTestAccountService(t)

	sessions.EXPECT().Delete(mock.Anything, "tok-1").Return(nil)

	assert.NoError(t, svc.SignOut(context.Background(), "tok-1"))
}

func TestAccountService_Validate_Expired(t *testing.T) {
	svc, _, sessions := newTestAccountService(t)

	sessions.EXPECT().Validate(mock.Anything, "tok-1", mock.Anything).Return("", domain.ErrSessionExpired)

	_, err := svc.Validate(context.Background(), "tok-1")

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestAccountService_UpdateSalary_RejectsNegative(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	err := svc.UpdateSalary(context.Background(), "acc-1", -1)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_SweepSessions(t *testing.T) {
	svc, _, sessions := newTestAccountService(t)

	sessions.EXPECT().DeleteExpired(mock.Anything, mock.Anything).Return(3, nil)

	removed, err := svc.SweepSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}
