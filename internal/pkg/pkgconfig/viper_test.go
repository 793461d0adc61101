package pkgconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, `
modules:
  compare:
    enabled: true
uid:
  snowflake_node: 42
server:
  address:
    http: ":8080"
  shutdown_timeout: 1m30s
cors:
  allowed_origins: "http://a.test, ,http://b.test"
upload:
  max_file_size: 10MB
`)

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	defer func() {
		if err := cfg.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if got := cfg.GetInt("uid.snowflake_node"); got != 42 {
		t.Fatalf("GetInt: expected 42, got %d", got)
	}
	if got := cfg.GetBool("modules.compare.enabled"); !got {
		t.Fatalf("GetBool: expected true")
	}
	if got := cfg.GetString("server.address.http"); got != ":8080" {
		t.Fatalf("GetString: expected :8080, got %q", got)
	}
	if got := cfg.GetArray("cors.allowed_origins"); !reflect.DeepEqual(got, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("GetArray: unexpected value: %#v", got)
	}
	if got := cfg.GetSize("upload.max_file_size"); got != 10<<20 {
		t.Fatalf("GetSize: expected %d, got %d", 10<<20, got)
	}
	if got := cfg.GetDuration("server.shutdown_timeout"); got != 90*time.Second {
		t.Fatalf("GetDuration: expected 1m30s, got %v", got)
	}
	if got := cfg.GetString("missing.key"); got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}

func TestViperPlainByteSize(t *testing.T) {
	cfg, err := NewViper(writeConfigFile(t, "upload:\n  max_file_size: 2048\n"))
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetSize("upload.max_file_size"); got != 2048 {
		t.Fatalf("GetSize: expected 2048, got %d", got)
	}
}

func TestViperMissingFile(t *testing.T) {
	if _, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestViperEnvOverride(t *testing.T) {
	path := writeConfigFile(t, "storage:\n  record:\n    driver: memory\n")
	t.Setenv("STORAGE_RECORD_DRIVER", "sqlite")

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetString("storage.record.driver"); got != "sqlite" {
		t.Fatalf("expected env override sqlite, got %q", got)
	}
}
