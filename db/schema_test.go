package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/pollsite/cliparse"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "schema.db"),
	}
	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	for _, table := range []string{"question", "choice"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestCreateSchema_UnsupportedType(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn, "mysql"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestCreateSchema_DeleteQuestionCascades(t *testing.T) {
	conn := openTestDB(t)
	if err := CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatal(err)
	}

	var questionID int64
	err := conn.QueryRow(`INSERT INTO question (question_text, pub_date) VALUES ('Q', 0) RETURNING id`).Scan(&questionID)
	if err != nil {
		t.Fatalf("Failed to insert question: %v", err)
	}
	for _, text := range []string{"a", "b"} {
		if _, err := conn.Exec(`INSERT INTO choice (question_id, choice_text) VALUES ($1, $2)`, questionID, text); err != nil {
			t.Fatalf("Failed to insert choice: %v", err)
		}
	}

	if _, err := conn.Exec(`DELETE FROM question WHERE id = $1`, questionID); err != nil {
		t.Fatalf("Failed to delete question: %v", err)
	}

	var remaining int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM choice`).Scan(&remaining); err != nil {
		t.Fatal(err)
	}
	if remaining != 0 {
		t.Errorf("expected choices to be deleted with their question, %d remain", remaining)
	}
}

func TestCreateSchema_ChoiceRequiresQuestion(t *testing.T) {
	conn := openTestDB(t)
	if err := CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatal(err)
	}

	_, err := conn.Exec(`INSERT INTO choice (question_id, choice_text) VALUES (999, 'orphan')`)
	if err == nil {
		t.Error("expected foreign key violation for choice without question")
	}
}

func TestCreateSchema_VotesNeverNegative(t *testing.T) {
	conn := openTestDB(t)
	if err := CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatal(err)
	}

	var questionID int64
	if err := conn.QueryRow(`INSERT INTO question (question_text, pub_date) VALUES ('Q', 0) RETURNING id`).Scan(&questionID); err != nil {
		t.Fatal(err)
	}

	_, err := conn.Exec(`INSERT INTO choice (question_id, choice_text, votes) VALUES ($1, 'neg', -1)`, questionID)
	if err == nil {
		t.Error("expected check constraint violation for negative votes")
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open(cliparse.Config{DatabaseType: "mysql", DatabaseURL: "x"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"polls.db", "polls.db?" + sqlitePragmas},
		{"file:polls.db?mode=rwc", "file:polls.db?mode=rwc&" + sqlitePragmas},
	}

	for _, tt := range tests {
		if got := SQLiteDSN(tt.in); got != tt.want {
			t.Errorf("SQLiteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
