// Identity provider client.
//
// This file implements the lookup used by the admin directory facade: listing
// the members of one identity group. The upstream exposes users with a flat
// attribute list (given_name, family_name, email); interpreting those
// attributes is left to the admin service.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// IdentityAttribute is one name/value pair attached to an identity user.
type IdentityAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// IdentityUser is a directory entry as returned by the identity provider.
type IdentityUser struct {
	Username   string              `json:"username"`
	Attributes []IdentityAttribute `json:"attributes"`
}

// groupUsersResponse is the provider's envelope for a group membership list.
type groupUsersResponse struct {
	Users []IdentityUser `json:"users"`
}

// IdentityClient handles communication with the identity provider's admin API.
type IdentityClient struct {
	baseURL string
	client  *http.Client
}

// NewIdentityClient creates an identity client rooted at baseURL.
func NewIdentityClient(baseURL string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ListGroupUsers returns the members of the named group within userPool.
// Only the first page of the upstream listing is requested; follow-up pages
// are out of scope for the admin directory.
//
// Unlike the TCS lookup, failures here propagate: the admin endpoint has no
// degraded mode, so the caller surfaces a server error.
func (c *IdentityClient) ListGroupUsers(ctx context.Context, group, userPool string) ([]IdentityUser, error) {
	u := fmt.Sprintf("%s/groups/%s/users", c.baseURL, url.PathEscape(group))
	if userPool != "" {
		u += "?userPool=" + url.QueryEscape(userPool)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("identity: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: listing group %q: %w", group, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("identity: listing group %q: unexpected status %d", group, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("identity: reading response: %w", err)
	}

	var out groupUsersResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("identity: decoding response: %w", err)
	}
	return out.Users, nil
}
