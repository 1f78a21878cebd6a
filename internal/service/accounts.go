package service

import (
	"fmt"
	"strings"

	"shopplus/internal/models"
	"shopplus/internal/store"
	"shopplus/internal/util"

	"go.uber.org/zap"
)

// AccountService authenticates users against the account list and handles
// registration and administration of accounts
type AccountService struct {
	accounts []models.Account
	store    *store.AccountStore
	logger   *zap.Logger
}

// NewAccountService loads the account list from its backing store
func NewAccountService(st *store.AccountStore) (*AccountService, error) {
	accounts, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	return &AccountService{
		accounts: accounts,
		store:    st,
		logger:   util.GetLogger(),
	}, nil
}

// Authenticate checks the given credentials against every account and
// returns the matching one
func (s *AccountService) Authenticate(email, password string) (*models.Account, error) {
	for i := range s.accounts {
		account := &s.accounts[i]
		if account.Email == email && account.Password == password {
			s.logger.Info("Login",
				zap.String("email", account.Email),
				zap.String("role", string(account.Role)))
			return account, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Register adds a new account and rewrites the account file
func (s *AccountService) Register(account models.Account) error {
	s.accounts = append(s.accounts, account)
	if err := s.store.Save(s.accounts); err != nil {
		return fmt.Errorf("failed to persist accounts: %w", err)
	}

	util.AccountsRegisteredTotal.Inc()
	s.logger.Info("Account registered",
		zap.String("email", account.Email),
		zap.String("role", string(account.Role)))
	return nil
}

// ListAll returns every registered account in load order
func (s *AccountService) ListAll() []models.Account {
	return s.accounts
}

// FindByEmail returns the account with the given email, compared
// case-insensitively
func (s *AccountService) FindByEmail(email string) (*models.Account, error) {
	for i := range s.accounts {
		if strings.EqualFold(s.accounts[i].Email, email) {
			return &s.accounts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, email)
}

// RemoveByEmail deletes the account with the given email and rewrites the
// account file
func (s *AccountService) RemoveByEmail(email string) error {
	for i := range s.accounts {
		if strings.EqualFold(s.accounts[i].Email, email) {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			if err := s.store.Save(s.accounts); err != nil {
				return fmt.Errorf("failed to persist accounts: %w", err)
			}
			s.logger.Info("Account removed", zap.String("email", email))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAccountNotFound, email)
}
