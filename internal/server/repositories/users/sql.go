package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/dbx"
	"github.com/dmitrijs2005/userregistry/internal/server/models"
	"github.com/google/uuid"
)

const userColumns = `id, first_name, last_name, mobile, email, street, city, state, country, login_id, password, created_at, updated_at`

// sqlRepository holds the queries shared by the Postgres and SQLite
// repositories. Dialects differ in placeholders and in how a unique
// violation surfaces.
type sqlRepository struct {
	db          dbx.DBTX
	placeholder func(n int) string
	duplicate   func(err error) error
	now         func() time.Time
}

func (r *sqlRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	ph := make([]string, 13)
	for i := range ph {
		ph[i] = r.placeholder(i + 1)
	}
	query := `INSERT INTO users (` + userColumns + `) VALUES (` + strings.Join(ph, ", ") + `)`

	id := uuid.NewString()
	ts := r.now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		id, user.FirstName, user.LastName, user.Mobile, user.Email, user.Street,
		user.City, user.State, user.Country, user.LoginID, user.PasswordHash, ts, ts)
	if err != nil {
		if dup := r.duplicate(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = id
	user.CreatedAt = ts
	user.UpdatedAt = ts
	return user, nil
}

func (r *sqlRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *sqlRepository) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return r.getBy(ctx, "mobile", mobile)
}

func (r *sqlRepository) getBy(ctx context.Context, column, value string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = ` + r.placeholder(1)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	u := &models.User{}
	err := s.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Mobile, &u.Email, &u.Street,
		&u.City, &u.State, &u.Country, &u.LoginID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// duplicateByName maps a unique-violation message or constraint name to the
// matching sentinel.
func duplicateByName(name string) error {
	switch {
	case strings.Contains(name, "email"):
		return common.ErrorDuplicateEmail
	case strings.Contains(name, "mobile"):
		return common.ErrorDuplicateMobile
	default:
		return nil
	}
}
