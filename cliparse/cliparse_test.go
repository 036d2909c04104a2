// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears keys for the duration of the test and restores them afterwards
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

var configKeys = []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "SEED_FILE"}

func TestParseFlags_EnvVars(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{"-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.ListLimit != DefaultListLimit {
		t.Errorf("expected list limit %d, got %d", DefaultListLimit, cfg.ListLimit)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-env", "", "-p", "8080", "-d", "file:test.db", "-seed", "questions.json"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.SeedFile != "questions.json" {
		t.Errorf("expected seed file questions.json, got %q", cfg.SeedFile)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	unsetEnv(t, configKeys...)

	cfg, err := ParseFlags([]string{"-env", "", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.SeedFile != "" {
		t.Errorf("expected no seed file, got %q", cfg.SeedFile)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing database url",
			args: []string{"-env", ""},
		},
		{
			name: "invalid port",
			env:  map[string]string{"PORT": "not-a-port"},
			args: []string{"-env", "", "-d", "file:test.db"},
		},
		{
			name: "unsupported database type",
			args: []string{"-env", "", "-d", "file:test.db", "-t", "mysql"},
		},
		{
			name: "unknown flag",
			args: []string{"-env", "", "-bogus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, configKeys...)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseFlags_LoadsEnvFile(t *testing.T) {
	unsetEnv(t, configKeys...)

	path := filepath.Join(t.TempDir(), ".env")
	contents := "DATABASE_URL=file:from-dotenv.db\nPORT=7000\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "file:from-dotenv.db" {
		t.Errorf("expected DATABASE_URL from dotenv, got %q", cfg.DatabaseURL)
	}
	if cfg.Port != 7000 {
		t.Errorf("expected port 7000 from dotenv, got %d", cfg.Port)
	}
}

func TestParseFlags_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("DATABASE_URL", "file:from-env.db")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DATABASE_URL=file:from-dotenv.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != "file:from-env.db" {
		t.Errorf("environment should win over dotenv, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_MissingEnvFileIsIgnored(t *testing.T) {
	unsetEnv(t, configKeys...)

	missing := filepath.Join(t.TempDir(), "does-not-exist.env")
	if _, err := ParseFlags([]string{"-env", missing, "-d", "file:test.db"}); err != nil {
		t.Fatalf("missing env file should be ignored, got %v", err)
	}
}
