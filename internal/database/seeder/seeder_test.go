package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

type fakeRows struct {
	vals []string
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.vals)
}
func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.vals[r.i-1]
	return nil
}

type execCall struct {
	query string
	args  []any
}

type fakeTx struct {
	db *fakeDB
}

func (t *fakeTx) Exec(_ context.Context, query string, args ...any) (int64, error) {
	t.db.execs = append(t.db.execs, execCall{query: query, args: args})
	return 1, nil
}
func (t *fakeTx) Query(context.Context, string, ...any) (database.Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(context.Context, string, ...any) database.Row       { return nil }
func (t *fakeTx) Commit(context.Context) error                                { t.db.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error                              { return nil }

type fakeDB struct {
	columns   []string
	execs     []execCall
	committed bool
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }
func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("exec outside tx")
}
func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &fakeRows{vals: d.columns}, nil
}
func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (d *fakeDB) Begin(context.Context) (database.Tx, error)          { return &fakeTx{db: d}, nil }
func (d *fakeDB) SQLDB() *sql.DB                                      { return nil }

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "department", "position", "hire_date", "is_approved", "role"}

func TestDefaults(t *testing.T) {
	if got := Defaults(config.SeedConfig{AdminEmail: "hr@example.com"}); len(got) != 0 {
		t.Fatalf("expected no seeders without a password, got %d", len(got))
	}

	got := Defaults(config.SeedConfig{AdminEmail: "hr@example.com", AdminPassword: "pw"})
	if len(got) != 1 || got[0].Name() != "accounts" {
		t.Fatalf("expected the accounts seeder, got %v", got)
	}
}

func TestAccountsSeeder_InsertsApprovedHashedAccount(t *testing.T) {
	db := &fakeDB{columns: userColumns}
	s := AccountsSeeder{
		Cost:     bcrypt.MinCost,
		Accounts: []Account{{Email: "  HR@Example.com ", Password: "s3cret-pass", FirstName: "HR", LastName: "Admin", Role: user.RoleHR}},
	}

	if err := (Runner{Seeders: []Seeder{s}}).Run(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !db.committed {
		t.Fatalf("expected commit")
	}
	if len(db.execs) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(db.execs))
	}

	call := db.execs[0]
	if !strings.Contains(call.query, "ON CONFLICT (email) DO NOTHING") {
		t.Fatalf("expected idempotent insert, got %s", call.query)
	}
	if call.args[1] != "hr@example.com" {
		t.Fatalf("expected normalized email, got %v", call.args[1])
	}
	if err := bcrypt.CompareHashAndPassword([]byte(call.args[2].(string)), []byte("s3cret-pass")); err != nil {
		t.Fatalf("expected bcrypt hash of the password: %v", err)
	}
	if call.args[8] != "HR" {
		t.Fatalf("expected HR role, got %v", call.args[8])
	}
}

func TestAccountsSeeder_SchemaMismatch(t *testing.T) {
	db := &fakeDB{columns: []string{"id", "email"}}
	err := AccountsSeeder{Accounts: []Account{{Email: "a@b.c", Password: "x"}}}.Run(context.Background(), db)
	if err == nil || !strings.Contains(err.Error(), "schema mismatch") {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestEnsureTableColumns_ReportsEveryMissingColumn(t *testing.T) {
	db := &fakeDB{columns: []string{"id", "email"}}

	err := EnsureTableColumns(context.Background(), db, "users", "id", "role", "hire_date")
	if err == nil {
		t.Fatal("expected schema mismatch")
	}
	if !strings.Contains(err.Error(), "users.role") || !strings.Contains(err.Error(), "users.hire_date") {
		t.Fatalf("expected both missing columns with table context, got %v", err)
	}
	if strings.Contains(err.Error(), "users.id") {
		t.Fatalf("present column reported missing: %v", err)
	}

	if err := EnsureTableColumns(context.Background(), nil, "users", "id"); err == nil || !strings.Contains(err.Error(), "users") {
		t.Fatalf("expected nil db error naming the table, got %v", err)
	}
	if err := EnsureTableColumns(context.Background(), db, "users", "id", ""); err == nil || !strings.Contains(err.Error(), "users") {
		t.Fatalf("expected empty column error naming the table, got %v", err)
	}
}
