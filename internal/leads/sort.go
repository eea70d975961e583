package leads

import (
	"fmt"
	"sort"
	"strings"

	"github.com/useleadnest/leadnest-cli/internal/api"
)

// Sort fields for the leads table
const (
	SortByName    = "name"
	SortByEmail   = "email"
	SortByStatus  = "status"
	SortByCreated = "created"
)

// Sort orders leads by the given field. Descending reverses the
// order. String comparison is case-insensitive; ties keep their
// relative order.
func Sort(leads []api.Lead, field string, descending bool) error {
	var key func(api.Lead) string
	switch field {
	case SortByName:
		key = func(l api.Lead) string { return strings.ToLower(l.FullName) }
	case SortByEmail:
		key = func(l api.Lead) string { return strings.ToLower(l.Email) }
	case SortByStatus:
		key = func(l api.Lead) string { return l.Status }
	case SortByCreated, "":
		// created_at is ISO 8601, lexicographic order is time order
		key = func(l api.Lead) string { return l.CreatedAt }
	default:
		return fmt.Errorf("unknown sort field %q: expected %s, %s, %s, or %s",
			field, SortByName, SortByEmail, SortByStatus, SortByCreated)
	}

	sort.SliceStable(leads, func(i, j int) bool {
		if descending {
			return key(leads[i]) > key(leads[j])
		}
		return key(leads[i]) < key(leads[j])
	})
	return nil
}
