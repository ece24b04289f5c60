package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/xid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// GitHubUserURL is the API endpoint that returns the signed-in user.
const GitHubUserURL = "https://api.github.com/user"

// GitHubUser is the portion of the GitHub /user API response we care about.
// GitHub returns a much larger object: we only unmarshal the fields we need.
type GitHubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// GitHubProvider wraps golang.org/x/oauth2 for the GitHub Authorization Code flow.
//
// OAUTH 2.0 AUTHORIZATION CODE FLOW:
// 1. We redirect the owner to GitHub's authorization endpoint with our ClientID.
// 2. They approve the request on GitHub.
// 3. GitHub redirects back to the callback URL with a short-lived "code".
// 4. We exchange the code for an access token (server-to-server, with the secret).
// 5. We call the GitHub API with the token to learn who signed in.
//
// Only the login matters afterwards: AdminService checks it against
// ADMIN_GITHUB_LOGINS. No scopes are requested because the public profile
// is enough to read the login.
type GitHubProvider struct {
	config  *oauth2.Config
	userURL string
}

// GitHubOption customises a GitHubProvider.
type GitHubOption func(*GitHubProvider)

// WithEndpoints points the provider at different OAuth and user endpoints.
// Tests use it to aim the flow at an httptest server.
func WithEndpoints(endpoint oauth2.Endpoint, userURL string) GitHubOption {
	return func(p *GitHubProvider) {
		p.config.Endpoint = endpoint
		p.userURL = userURL
	}
}

// NewGitHubProvider creates a GitHubProvider with the given credentials.
//
// callbackURL must match the "Authorization callback URL" of the OAuth App
// exactly. Example: "http://localhost:8080/admin/github/callback"
func NewGitHubProvider(clientID, clientSecret, callbackURL string, opts ...GitHubOption) *GitHubProvider {
	p := &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Endpoint:     github.Endpoint,
		},
		userURL: GitHubUserURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewState returns a fresh random value for the OAuth state parameter.
//
// STATE PARAMETER:
// The handler stores the state in a short-lived cookie before redirecting
// and compares it with the value GitHub echoes back. A mismatch means the
// callback was not started by this browser (CSRF).
func NewState() string {
	return xid.New().String()
}

// AuthURL returns the URL to redirect the owner to for authorization.
func (p *GitHubProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for the GitHub user who approved it.
func (p *GitHubProvider) Exchange(ctx context.Context, code string) (*GitHubUser, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("auth: missing OAuth code")
	}

	// Step 1: authorization code → OAuth access token.
	oauthToken, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("auth: exchanging OAuth code: %w", err)
	}

	// Step 2: call the user API. oauth2.Config.Client returns an *http.Client
	// that adds "Authorization: Bearer <token>" to every request.
	client := p.config.Client(ctx, oauthToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("auth: building GitHub user request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth: calling GitHub user API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth: GitHub user API returned status %d", resp.StatusCode)
	}

	// Step 3: decode only the fields we need.
	var ghUser GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&ghUser); err != nil {
		return nil, fmt.Errorf("auth: decoding GitHub user response: %w", err)
	}
	if ghUser.ID == 0 || ghUser.Login == "" {
		return nil, fmt.Errorf("auth: GitHub returned an invalid user")
	}
	return &ghUser, nil
}
