package api

import (
	"context"
	"fmt"
)

// Plans accepted by the checkout endpoint
const (
	PlanStarter    = "starter"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// sessionURL is the response shape of both Stripe endpoints: a hosted
// URL the user opens in a browser.
type sessionURL struct {
	URL string `json:"url"`
}

// CheckoutSession creates a Stripe checkout session for the plan and
// returns its hosted URL.
func (c *Client) CheckoutSession(ctx context.Context, plan string) (string, error) {
	switch plan {
	case PlanStarter, PlanPro, PlanEnterprise:
	default:
		return "", fmt.Errorf("unknown plan %q: expected %s, %s, or %s",
			plan, PlanStarter, PlanPro, PlanEnterprise)
	}

	var resp sessionURL
	if err := c.post(ctx, "/stripe/checkout", map[string]string{"plan": plan}, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// PortalSession creates a Stripe billing portal session and returns
// its hosted URL.
func (c *Client) PortalSession(ctx context.Context) (string, error) {
	var resp sessionURL
	if err := c.post(ctx, "/stripe/portal", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
