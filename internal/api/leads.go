package api

import (
	"context"
	"io"
	"strconv"
)

// Lead is a row in the leads table.
type Lead struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Source       string  `json:"source,omitempty"`
	Status       string  `json:"status,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	QualityScore float64 `json:"quality_score,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

// NewLead is the payload for creating a lead.
type NewLead struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// BulkResult reports the outcome of a CSV bulk upload.
type BulkResult struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

// LeadScore is one lead's quality score from the scoring endpoint.
type LeadScore struct {
	LeadID       int64   `json:"lead_id"`
	FullName     string  `json:"full_name,omitempty"`
	QualityScore float64 `json:"quality_score"`
}

// ListLeads returns all leads visible to the current user. Filtering
// and sorting happen client-side.
func (c *Client) ListLeads(ctx context.Context) ([]Lead, error) {
	var leads []Lead
	if err := c.get(ctx, "/leads", &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// CreateLead adds a single lead.
func (c *Client) CreateLead(ctx context.Context, lead NewLead) (*Lead, error) {
	var created Lead
	if err := c.post(ctx, "/leads", lead, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLead replaces a lead's mutable fields.
func (c *Client) UpdateLead(ctx context.Context, id int64, lead NewLead) (*Lead, error) {
	var updated Lead
	if err := c.do(ctx, "PUT", leadPath(id), lead, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// BulkUploadLeads uploads a CSV file of leads.
func (c *Client) BulkUploadLeads(ctx context.Context, filename string, file io.Reader) (*BulkResult, error) {
	var result BulkResult
	if err := c.upload(ctx, "/leads/bulk", "file", filename, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScoreLeads asks the backend to score the current leads.
func (c *Client) ScoreLeads(ctx context.Context) ([]LeadScore, error) {
	var scores []LeadScore
	if err := c.post(ctx, "/leads/score", nil, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func leadPath(id int64) string {
	return "/leads/" + strconv.FormatInt(id, 10)
}
