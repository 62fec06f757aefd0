package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("writing key file: %v", err)
	}

	t.Setenv("SKIN_ADVISOR_TEST_KEY", "from-env")

	got, err := Load(Source{Name: "api key", Value: "inline", File: path, Env: "SKIN_ADVISOR_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file secret, got %q", got)
	}
}

func TestLoadValueBeforeEnv(t *testing.T) {
	t.Setenv("SKIN_ADVISOR_TEST_KEY", "from-env")

	got, err := Load(Source{Value: " inline ", Env: "SKIN_ADVISOR_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("expected inline secret, got %q", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SKIN_ADVISOR_TEST_KEY", "from-env")

	got, err := Load(Source{Env: "SKIN_ADVISOR_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env secret, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("SKIN_ADVISOR_TEST_KEY", "")

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("writing key file: %v", err)
	}

	tests := []struct {
		name     string
		src      Source
		contains string
	}{
		{name: "nothing configured", src: Source{Name: "groq api key"}, contains: "groq api key is not configured"},
		{name: "env unset", src: Source{Name: "groq api key", Env: "SKIN_ADVISOR_TEST_KEY"}, contains: "set SKIN_ADVISOR_TEST_KEY"},
		{name: "empty file", src: Source{File: empty}, contains: "is empty"},
		{name: "missing file", src: Source{File: filepath.Join(t.TempDir(), "absent")}, contains: "reading secret from file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Fatalf("expected error to contain %q, got %q", tt.contains, err)
			}
		})
	}
}
