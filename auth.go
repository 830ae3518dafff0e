package harvest

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// AuthURL returns the implicit-grant authorization URL for an account.
// Harvest redirects back to redirectURI with the token carried in the URL
// fragment; extract it with TokenFromFragment. Only the redirect URI value
// is escaped.
func AuthURL(subdomain, clientID, redirectURI string) string {
	return fmt.Sprintf(
		"https://%s.harvestapp.com/oauth2/authorize?response_type=token&immediate=true&approval_prompt=auto&client_id=%s&redirect_uri=%s",
		subdomain, clientID, url.QueryEscape(redirectURI),
	)
}

// TokenFromFragment extracts the access token from the fragment Harvest
// appends to the redirect URI ("#access_token=...&token_type=bearer").
// A leading "#" is tolerated and malformed key=value pairs are skipped.
// When no token is present the error is a *MissingTokenError carrying
// authURL, so callers can re-prompt.
func TokenFromFragment(fragment, authURL string) (string, error) {
	fragment = strings.TrimPrefix(fragment, "#")
	for _, pair := range strings.Split(fragment, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if key == "access_token" && value != "" {
			return value, nil
		}
	}
	return "", &MissingTokenError{AuthURL: authURL}
}

// Endpoint returns the OAuth 2.0 endpoints of an account, for callers
// running golang.org/x/oauth2 authorization-code flows instead of the
// implicit grant.
func Endpoint(subdomain string) oauth2.Endpoint {
	base := fmt.Sprintf("https://%s.harvestapp.com/oauth2", subdomain)
	return oauth2.Endpoint{
		AuthURL:   base + "/authorize",
		TokenURL:  base + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// OAuthConfig assembles an oauth2.Config against an account's endpoints.
func OAuthConfig(subdomain, clientID, clientSecret, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Endpoint:     Endpoint(subdomain),
	}
}
