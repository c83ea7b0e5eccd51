package users

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/dbx"
)

type SQLiteRepository struct {
	sqlRepository
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{sqlRepository{
		db:          db,
		placeholder: func(int) string { return "?" },
		duplicate:   sqliteDuplicate,
		now:         time.Now,
	}}
}

// sqliteDuplicate recognises "UNIQUE constraint failed: users.email".
func sqliteDuplicate(err error) error {
	msg := err.Error()
	i := strings.Index(msg, "UNIQUE constraint failed:")
	if i < 0 {
		return nil
	}
	return duplicateByName(msg[i:])
}
