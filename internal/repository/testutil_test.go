package repository

import (
	"testing"

	"portfolio-api/internal/database"
	"portfolio-api/internal/database/sqldb"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupMockDB(t *testing.T) (database.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
	}
	return sqldb.Wrap(db), mock, cleanup
}
