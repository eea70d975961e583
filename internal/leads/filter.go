// Package leads implements the client-side half of the leads table:
// filtering, sorting, CSV preview before bulk upload, and the import
// ledger that catches re-uploads of the same file.
package leads

import (
	"strings"

	"github.com/useleadnest/leadnest-cli/internal/api"
)

// Lead statuses used by the table filter
const (
	StatusAll       = "all"
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusBooked    = "booked"
)

// Filter selects leads for display. Zero value matches everything.
type Filter struct {
	// Search is a case-insensitive substring matched against name,
	// email, and phone.
	Search string

	// Status keeps only leads with this status; "all" or "" keeps all.
	Status string
}

// Apply returns the leads matching the filter, preserving order.
func (f Filter) Apply(leads []api.Lead) []api.Lead {
	if f.Search == "" && (f.Status == "" || f.Status == StatusAll) {
		return leads
	}

	search := strings.ToLower(f.Search)
	out := make([]api.Lead, 0, len(leads))
	for _, lead := range leads {
		if f.Status != "" && f.Status != StatusAll && lead.Status != f.Status {
			continue
		}
		if search != "" && !matches(lead, search) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

func matches(lead api.Lead, search string) bool {
	return strings.Contains(strings.ToLower(lead.FullName), search) ||
		strings.Contains(strings.ToLower(lead.Email), search) ||
		strings.Contains(lead.Phone, search)
}

// ValidStatus reports whether s is a known status filter value.
func ValidStatus(s string) bool {
	switch s {
	case StatusAll, StatusNew, StatusContacted, StatusBooked:
		return true
	}
	return false
}
