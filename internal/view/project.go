// Package view derives the displayed subset of the user collection: a
// case-insensitive substring filter over name, username, and email, followed
// by a fixed-size page window. Projection is a pure function of its inputs so
// it can be tested without a live terminal; rendering the result is the TUI's
// job.
package view

import (
	"strings"

	"userdeck/internal/user"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 5

// Projection is the derived view subset.
type Projection struct {
	Visible       []user.User // records on the current page
	Page          int         // 1-indexed, clamped to [1, TotalPages]
	TotalPages    int         // at least 1, even for an empty filtered set
	FilteredCount int         // total matches across all pages
}

// Project filters records by filterText (substring match over name, username,
// and email, case-insensitive, logical OR; empty text matches everything) and
// slices out the requested page. A page beyond the filtered range falls back
// to the first page, matching what a shrinking filter does to the cursor,
// rather than being presented as an empty out-of-range page.
func Project(records []user.User, filterText string, page, pageSize int) Projection {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := records
	if q := strings.ToLower(strings.TrimSpace(filterText)); q != "" {
		filtered = make([]user.User, 0, len(records))
		for _, u := range records {
			if strings.Contains(strings.ToLower(u.Name), q) ||
				strings.Contains(strings.ToLower(u.Username), q) ||
				strings.Contains(strings.ToLower(u.Email), q) {
				filtered = append(filtered, u)
			}
		}
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	visible := make([]user.User, end-start)
	copy(visible, filtered[start:end])

	return Projection{
		Visible:       visible,
		Page:          page,
		TotalPages:    totalPages,
		FilteredCount: len(filtered),
	}
}
