// Package cli implements the harvest command line client.
package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/moretide/harvest"
	"github.com/moretide/harvest/internal/config"
)

var (
	flagSubdomain string
	flagToken     string
	flagDebug     bool
	flagRetries   uint64
)

var rootCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Command line client for Harvest time tracking",
	Long: `harvest talks to a Harvest account from the command line:
log hours, drive timers and pull simple reports.

The account subdomain comes from ~/.harvest/config.json, HARVEST_SUBDOMAIN
or --subdomain. Authenticate once with 'harvest auth', or pass a personal
access token via HARVEST_ACCESS_TOKEN or --token.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSubdomain, "subdomain", "", "Account subdomain (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Access token (overrides stored token)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log requests to stderr")
	rootCmd.PersistentFlags().Uint64Var(&flagRetries, "retries", 0, "Retry reads this many times on transient errors")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(tasksCmd)
}

// loadConfig reads the config file and applies the --subdomain override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagSubdomain != "" {
		cfg.Subdomain = flagSubdomain
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveToken returns the access token: flag first, then environment, then
// the stored token file.
func resolveToken() (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	if tok := os.Getenv(config.EnvAccessToken); tok != "" {
		return tok, nil
	}
	tok, err := config.LoadToken()
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", fmt.Errorf("no access token; run 'harvest auth' or set %s", config.EnvAccessToken)
	}
	return tok, nil
}

// newAPI builds the API session for the current invocation.
func newAPI() (*harvest.API, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	tok, err := resolveToken()
	if err != nil {
		return nil, err
	}

	var opts []harvest.Option
	if flagDebug {
		opts = append(opts, harvest.WithLogger(hclog.New(&hclog.LoggerOptions{
			Name:  "harvest",
			Level: hclog.Debug,
		})))
	}
	if flagRetries > 0 {
		opts = append(opts, harvest.WithHTTPClient(&http.Client{
			Timeout:   30 * time.Second,
			Transport: &harvest.RetryTransport{MaxRetries: flagRetries},
		}))
	}
	return harvest.NewAPI(cfg.Subdomain, tok, opts...), nil
}

// parseDate accepts the common date spellings users type, like
// "2017-03-05", "03/05/2017" or "Mar 5 2017".
func parseDate(s string) (time.Time, error) {
	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return t, nil
}

// strOr dereferences s, falling back when it is nil or empty.
func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
