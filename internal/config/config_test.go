package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromCreatesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom on missing file: %v", err)
	}
	if cfg.OAuthRedirectURI != DefaultRedirectURI {
		t.Errorf("redirect URI = %q, want %q", cfg.OAuthRedirectURI, DefaultRedirectURI)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("template was not written: %v", err)
	}
	if !strings.Contains(string(data), "// harvest configuration") {
		t.Error("template is missing its comment header")
	}

	// The written template must itself parse on the next run.
	again, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom on written template: %v", err)
	}
	if again.Subdomain != "" {
		t.Errorf("template subdomain = %q, want empty", again.Subdomain)
	}
}

func TestLoadFromStripsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `// top comment
{
  // inner comment
  "subdomain": "acme",
  "oauth_client_id": "client123"
}
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.Subdomain != "acme" {
		t.Errorf("subdomain = %q, want %q", cfg.Subdomain, "acme")
	}
	if cfg.OAuthClientID != "client123" {
		t.Errorf("client ID = %q, want %q", cfg.OAuthClientID, "client123")
	}
	if cfg.OAuthRedirectURI != DefaultRedirectURI {
		t.Errorf("redirect URI = %q, want default %q", cfg.OAuthRedirectURI, DefaultRedirectURI)
	}
}

func TestLoadFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := loadFrom(path)
	if err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSubdomain, "fromenv")

	cfg := Config{Subdomain: "fromfile"}
	cfg.applyEnv()
	if cfg.Subdomain != "fromenv" {
		t.Errorf("subdomain = %q, want %q", cfg.Subdomain, "fromenv")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		subdomain string
		ok        bool
	}{
		{"acme", true},
		{"my-company", true},
		{"team42", true},
		{"", false},
		{"Acme", false},
		{"my.company", false},
		{"-leading", false},
	}
	for _, tt := range tests {
		cfg := Config{Subdomain: tt.subdomain, OAuthRedirectURI: DefaultRedirectURI}
		err := cfg.Validate()
		if tt.ok && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tt.subdomain, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("Validate(%q) = nil, want error", tt.subdomain)
		}
	}
}

func TestValidateRedirectURI(t *testing.T) {
	cfg := Config{Subdomain: "acme", OAuthRedirectURI: "not a url"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for relative redirect URI")
	}

	cfg.OAuthRedirectURI = "https://app.example.com/cb"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth", "token.json")

	if err := saveTokenTo(path, "secret-token"); err != nil {
		t.Fatalf("saveTokenTo: %v", err)
	}

	got, err := loadTokenFrom(path)
	if err != nil {
		t.Fatalf("loadTokenFrom: %v", err)
	}
	if got != "secret-token" {
		t.Errorf("token = %q, want %q", got, "secret-token")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}
}

func TestLoadTokenMissing(t *testing.T) {
	got, err := loadTokenFrom(filepath.Join(t.TempDir(), "token.json"))
	if err != nil {
		t.Fatalf("loadTokenFrom on missing file: %v", err)
	}
	if got != "" {
		t.Errorf("token = %q, want empty", got)
	}
}

func TestLoadTokenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("{bad"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadTokenFrom(path); err == nil {
		t.Fatal("expected error for corrupt token file, got nil")
	}
}
