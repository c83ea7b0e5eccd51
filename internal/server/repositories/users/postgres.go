package users

import (
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	sqlRepository
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{sqlRepository{
		db:          db,
		placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
		duplicate:   postgresDuplicate,
		now:         time.Now,
	}}
}

func postgresDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	return duplicateByName(pgErr.ConstraintName)
}
