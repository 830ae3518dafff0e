package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the CLI configuration, stored in ~/.harvest/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// Subdomain is the account name from https://<subdomain>.harvestapp.com.
	Subdomain string `json:"subdomain"`
	// OAuthClientID is the client ID of a registered OAuth application.
	// Only needed for 'harvest auth'; personal access tokens work without it.
	OAuthClientID string `json:"oauth_client_id"`
	// OAuthRedirectURI is the redirect URI registered with the OAuth
	// application. The browser lands there after authorization with the
	// token in the URL fragment.
	OAuthRedirectURI string `json:"oauth_redirect_uri"`
}

const (
	// EnvSubdomain overrides the config file's subdomain.
	EnvSubdomain = "HARVEST_SUBDOMAIN"
	// EnvAccessToken supplies the access token without a stored token file.
	EnvAccessToken = "HARVEST_ACCESS_TOKEN"
	// DefaultRedirectURI is used when the config file leaves the OAuth
	// redirect empty.
	DefaultRedirectURI = "http://localhost:8123/callback"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// defaultConfig returns a Config pre-filled with built-in defaults.
func defaultConfig() Config {
	return Config{
		OAuthRedirectURI: DefaultRedirectURI,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// harvest configuration - ~/.harvest/config.json
//
// Only "subdomain" is required. The OAuth settings matter only when signing
// in with 'harvest auth'; a personal access token works without them.
{
  // ── Account ──────────────────────────────────────────────────────────────
  // The account name from https://<subdomain>.harvestapp.com.
  "subdomain": "",

  // ── OAuth (optional) ─────────────────────────────────────────────────────
  // Client ID of an OAuth application registered with the service.
  // Leave empty to authenticate with a personal access token instead
  // (HARVEST_ACCESS_TOKEN or --token).
  "oauth_client_id": "",

  // Redirect URI registered with the OAuth application.
  "oauth_redirect_uri": "http://localhost:8123/callback"
}
`

// Path returns the config file location, ~/.harvest/config.json.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".harvest", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.harvest/config.json, creating it with annotated defaults on
// first run, then overlays environment variables.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return defaultConfig(), err
	}
	cfg, err := loadFrom(path)
	if err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	if cfg.OAuthRedirectURI == "" {
		cfg.OAuthRedirectURI = DefaultRedirectURI
	}
	return cfg, nil
}

// applyEnv overlays environment variables over file values.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvSubdomain); v != "" {
		c.Subdomain = v
	}
}

// Validate checks the loaded values before any request is attempted.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Subdomain,
			validation.Required.Error("is not set; edit the config file or set "+EnvSubdomain),
			validation.Match(subdomainPattern).Error("must be the lowercase account name from https://<subdomain>.harvestapp.com"),
		),
		validation.Field(&c.OAuthRedirectURI, validation.By(checkRedirectURI)),
	)
}

func checkRedirectURI(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
