package validators

import (
	"net/http"
	"strings"

	"github.com/campuskart/campuskart-backend/internal/catalog"
)

// ItemFiltersFromQuery reads the public catalog filters. Absent parameters
// and the "all" sentinel both mean unfiltered; the repo treats them the same.
func ItemFiltersFromQuery(r *http.Request) catalog.ItemFilters {
	q := r.URL.Query()
	return catalog.ItemFilters{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		Mode:     strings.TrimSpace(q.Get("mode")),
	}
}
