package api

import "context"

// User is the authenticated user's account record.
type User struct {
	ID                 int64  `json:"id"`
	Email              string `json:"email"`
	BusinessID         int64  `json:"business_id,omitempty"`
	Role               string `json:"role,omitempty"`
	Plan               string `json:"plan,omitempty"`
	SubscriptionStatus string `json:"subscription_status,omitempty"`
	TrialEndsAt        string `json:"trial_ends_at,omitempty"`
	CreatedAt          string `json:"created_at,omitempty"`
}

// HasActiveSubscription reports whether the account can use paid
// features. Trialing counts as active; the backend enforces the real
// cutoff.
func (u *User) HasActiveSubscription() bool {
	switch u.SubscriptionStatus {
	case "active", "trialing":
		return true
	}
	return false
}

// Me returns the authenticated user's account.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
