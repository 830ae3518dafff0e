package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// storedToken is the on-disk shape of ~/.harvest/auth/token.json.
type storedToken struct {
	AccessToken string `json:"access_token"`
}

// TokenPath returns the token file location, ~/.harvest/auth/token.json.
func TokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".harvest", "auth", "token.json"), nil
}

// LoadToken returns the saved access token, or "" when none is stored.
func LoadToken() (string, error) {
	path, err := TokenPath()
	if err != nil {
		return "", err
	}
	return loadTokenFrom(path)
}

func loadTokenFrom(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}
	var tok storedToken
	if err := json.Unmarshal(data, &tok); err != nil {
		return "", fmt.Errorf("corrupt token file (delete %s to re-authenticate): %w", path, err)
	}
	return tok.AccessToken, nil
}

// SaveToken persists an access token for later runs.
func SaveToken(token string) error {
	path, err := TokenPath()
	if err != nil {
		return err
	}
	return saveTokenTo(path, token)
}

// saveTokenTo writes atomically: temp file first, then rename.
func saveTokenTo(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	data, err := json.MarshalIndent(storedToken{AccessToken: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling token: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving token file: %w", err)
	}
	return nil
}
