package config

import (
	"strings"
	"testing"
)

func TestLoad_NonexistentFile(t *testing.T) {
	if _, err := Load("/definitely/not/a/real/file-12345.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.yaml", "addr: :8080\n: broken\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected YAML unmarshal error")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.json", `{ "addr": ":8080", "default_id": }`)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected JSON unmarshal error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.toml", "addr=:8080\ndefault_id\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected TOML unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"ok", Config{MaxSize: 9, LogFormat: "JSON"}, ""},
		{"negative max size", Config{MaxSize: -1}, "max_size"},
		{"log format", Config{LogFormat: "xml"}, "log_format"},
		{"body bytes", Config{MaxBodyBytes: -1}, "max_body_bytes"},
		{"timeout", Config{RequestTimeoutSeconds: -1}, "request_timeout_seconds"},
		{"instance expression", Config{Instances: []Instance{{ID: "a"}}}, "instances[0]: expression is required"},
		{"instance length", Config{Instances: []Instance{{Expression: "a in b | itemsPerPage: 1", Length: -2}}}, "instances[0]: length"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "max_size: -3\n")
	if _, err := Load(p); err == nil || !strings.Contains(err.Error(), "max_size") {
		t.Fatalf("expected validation error, got %v", err)
	}
}
