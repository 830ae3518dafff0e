package cli

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/moretide/harvest"
	"github.com/moretide/harvest/internal/config"
)

var authNoBrowser bool

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize against the account and store the access token",
	Args:  cobra.NoArgs,
	RunE:  runAuth,
}

func init() {
	authCmd.Flags().BoolVar(&authNoBrowser, "no-browser", false, "Print the authorization URL instead of opening a browser")
}

func runAuth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.OAuthClientID == "" {
		return fmt.Errorf("oauth_client_id is not set in the config file; set it, or skip 'harvest auth' and use a personal access token (%s or --token)", config.EnvAccessToken)
	}

	authURL := harvest.AuthURL(cfg.Subdomain, cfg.OAuthClientID, cfg.OAuthRedirectURI)

	fmt.Println("To sign in, authorize this app in your browser:")
	fmt.Printf("  %s\n", authURL)
	fmt.Println()
	if !authNoBrowser {
		if err := browser.OpenURL(authURL); err != nil {
			fmt.Fprintf(os.Stderr, "Could not open a browser: %v\n", err)
		}
	}

	fmt.Println("After authorizing, the browser lands on the redirect URI with the")
	fmt.Println("access token in the URL fragment. Paste the full address here:")
	fmt.Print("> ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading pasted URL: %w", err)
	}
	line = strings.TrimSpace(line)

	// Accept either the whole redirected URL or just its fragment.
	fragment := line
	if u, err := url.Parse(line); err == nil && u.Fragment != "" {
		fragment = u.Fragment
	}

	token, err := harvest.TokenFromFragment(fragment, authURL)
	if err != nil {
		return err
	}
	if err := config.SaveToken(token); err != nil {
		return err
	}

	fmt.Println("Token saved.")
	return nil
}
