package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/palmcar/rentaldesk/internal/logger"
)

func newTestSQLiteStorage(t *testing.T) (*sqliteStorage, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	s := &sqliteStorage{
		db:     db,
		logger: logger.Nop(),
	}
	return s, mock, db
}

func TestSQLiteGet_Found(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":"car-1"}]`))
	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(KeyFleet).
		WillReturnRows(rows)

	value, ok, err := s.Get(ctx, KeyFleet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be found")
	}
	if string(value) != `[{"id":"car-1"}]` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestSQLiteGet_Missing(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	_, ok, err := s.Get(ctx, "absent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected key to be absent")
	}
}

func TestSQLiteGet_QueryError(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM kv").
		WillReturnError(errors.New("disk I/O error"))

	_, _, err := s.Get(ctx, KeyFleet)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestSQLiteSet_Upsert(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs(KeyUsers, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.Set(ctx, KeyUsers, []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteSet_ExecError(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO kv").
		WillReturnError(errors.New("database is locked"))

	err := s.Set(ctx, KeyUsers, []byte(`[]`))
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestSQLiteDelete(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM kv").
		WithArgs(KeySession).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Delete(ctx, KeySession); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSQLiteKeys(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"key"}).
		AddRow(KeyBookings).
		AddRow(KeyFleet)
	mock.ExpectQuery("SELECT key FROM kv").
		WillReturnRows(rows)

	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != KeyBookings || keys[1] != KeyFleet {
		t.Errorf("unexpected keys: %v", keys)
	}
}
