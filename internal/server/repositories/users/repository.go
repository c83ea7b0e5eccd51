// Package users stores registration records. Every backend enforces email
// and mobile uniqueness at the store level and reports a violation as
// common.ErrorDuplicateEmail or common.ErrorDuplicateMobile.
package users

import (
	"context"

	"github.com/dmitrijs2005/userregistry/internal/server/models"
)

type Repository interface {
	// Create persists user, filling in ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	// List returns every record in store order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*models.User, error)
}
