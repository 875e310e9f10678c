package bridge

import (
	"context"
	"fmt"
	"net/url"

	"github.com/openfolio/folio"
)

// Login authenticates the user against the bridge service and returns the
// session token to use with New.
func Login(ctx context.Context, baseURL, email, password string) (token string, err error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var resp struct {
		Token string `json:"token"`
	}
	c := New(baseURL, "")
	if err := c.post(ctx, "/v1/auth/login", payload, &resp); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login succeeded but the service returned no token")
	}
	return resp.Token, nil
}

// Platforms returns the catalog of linkable platforms for the user.
func (c *Client) Platforms(ctx context.Context) ([]folio.Platform, error) {
	var out []folio.Platform
	if err := c.get(ctx, "/v1/platforms", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Connector returns a folio.Connector driving the bridge connection endpoint.
//
// The endpoint reports the attempt outcome in the payload; anything but a
// "connected" status (including transport and auth errors) surfaces as the
// error outcome, which the link session absorbs into the ledger.
func (c *Client) Connector() folio.Connector {
	return func(ctx context.Context, platformID string, credentials map[string]string) error {
		body := struct {
			Credentials map[string]string `json:"credentials,omitempty"`
		}{Credentials: credentials}
		var out struct {
			Status string `json:"status"`
			Reason string `json:"reason,omitempty"`
		}
		path := "/v1/platforms/" + url.PathEscape(platformID) + "/connections"
		if err := c.post(ctx, path, body, &out); err != nil {
			return err
		}
		if out.Status != "connected" {
			if out.Reason != "" {
				return fmt.Errorf("platform %s: %s", platformID, out.Reason)
			}
			return fmt.Errorf("platform %s: connection %s", platformID, out.Status)
		}
		return nil
	}
}

// FetchPortfolio retrieves the user's normalized multi-source portfolio.
func (c *Client) FetchPortfolio(ctx context.Context) (*folio.Portfolio, error) {
	var out folio.Portfolio
	if err := c.get(ctx, "/v1/portfolio", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ folio.PortfolioProvider = (*Client)(nil)
