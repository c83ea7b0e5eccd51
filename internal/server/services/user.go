// Package services contains server-side business logic. UserService
// registers users and lists stored registrations.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/shared"
	"github.com/dmitrijs2005/userregistry/internal/server/config"
	"github.com/dmitrijs2005/userregistry/internal/server/models"
	"github.com/dmitrijs2005/userregistry/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userregistry/internal/server/repositories/users"
	"github.com/dmitrijs2005/userregistry/internal/server/validation"
	"golang.org/x/crypto/bcrypt"
)

// UserService validates submissions, enforces email/mobile uniqueness and
// persists users through the repository manager.
type UserService struct {
	repomanager repomanager.RepositoryManager
	cost        int
	hash        func(password []byte, cost int) ([]byte, error)
}

// NewUserService constructs a UserService using the repository manager and
// server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager: m,
		cost:        cfg.PasswordCost,
		hash:        bcrypt.GenerateFromPassword,
	}
}

// Save validates form and stores it as a new user.
//
// Errors:
//   - *validation.FieldError (wraps common.ErrorValidation) for bad input;
//   - common.ErrorDuplicateEmail / common.ErrorDuplicateMobile when the
//     address or number is taken, email checked first;
//   - common.ErrorInternal wrapping the cause for store or hashing failures.
//
// The password is stored as a bcrypt hash.
func (s *UserService) Save(ctx context.Context, form validation.Form) (*models.User, error) {
	f, err := validation.Validate(form)
	if err != nil {
		return nil, err
	}

	password := []byte(f.Password)
	hash, err := s.hash(password, s.cost)
	shared.WipeByteArray(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &validation.FieldError{Field: "password", Message: "Password must be at most 72 bytes"}
		}
		return nil, fmt.Errorf("%w: error hashing password: %w", common.ErrorInternal, err)
	}

	user := &models.User{
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Mobile:       f.Mobile,
		Email:        f.Email,
		Street:       f.Street,
		City:         f.City,
		State:        f.State,
		Country:      f.Country,
		LoginID:      f.LoginID,
		PasswordHash: hash,
	}

	err = s.repomanager.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		if err := checkUnique(ctx, repo, user.Email, user.Mobile); err != nil {
			return err
		}
		_, err := repo.Create(ctx, user)
		return err
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: error creating user: %w", common.ErrorInternal, err)
	}

	return user, nil
}

// CheckUnique reports common.ErrorDuplicateEmail if email is taken, else
// common.ErrorDuplicateMobile if mobile is taken, else nil.
func (s *UserService) CheckUnique(ctx context.Context, email, mobile string) error {
	return checkUnique(ctx, s.repomanager.Users(), email, mobile)
}

// List returns every stored user in store order. Store failures wrap
// common.ErrorInternal.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	list, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing users: %w", common.ErrorInternal, err)
	}
	return list, nil
}

func checkUnique(ctx context.Context, repo users.Repository, email, mobile string) error {
	if err := exists(ctx, repo.GetUserByEmail, email, common.ErrorDuplicateEmail); err != nil {
		return err
	}
	return exists(ctx, repo.GetUserByMobile, mobile, common.ErrorDuplicateMobile)
}

func exists(ctx context.Context, get func(context.Context, string) (*models.User, error), key string, dup error) error {
	_, err := get(ctx, key)
	switch {
	case err == nil:
		return dup
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return err
	}
}

func isDuplicate(err error) bool {
	return errors.Is(err, common.ErrorDuplicateEmail) || errors.Is(err, common.ErrorDuplicateMobile)
}
