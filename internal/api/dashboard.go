package api

import "context"

// DashboardStats is the ROI dashboard summary.
type DashboardStats struct {
	TotalSearches int  `json:"total_searches"`
	TotalLeads    int  `json:"total_leads"`
	TotalExports  int  `json:"total_exports"`
	TrialDaysLeft *int `json:"trial_days_left,omitempty"`
}

// DashboardStats returns the account's summary counters.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.get(ctx, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
