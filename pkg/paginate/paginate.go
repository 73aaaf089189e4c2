package paginate

// Defaults applied when a pagination parameter is absent
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params are validated pagination inputs; both values are positive
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination block returned alongside a page of results
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"total_pages"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// Page slices one page out of an already-filtered collection snapshot.
// A page past the end yields an empty slice with accurate metadata, not
// an error. Offsets are only computed for in-range pages so arbitrarily
// large page or limit values cannot overflow.
func Page[T any](items []T, p Params) ([]T, Meta) {
	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = total / p.Limit
		if total%p.Limit != 0 {
			totalPages++
		}
	}

	meta := Meta{
		Page:            p.Page,
		Limit:           p.Limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1 && totalPages > 0,
	}

	if p.Page > totalPages {
		return []T{}, meta
	}

	// In range: p.Page <= ceil(total/limit), so (p.Page-1)*limit < total
	// and the multiply cannot wrap.
	offset := (p.Page - 1) * p.Limit
	end := total
	if p.Limit < total-offset {
		end = offset + p.Limit
	}
	return items[offset:end], meta
}
