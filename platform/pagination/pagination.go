// Package pagination normalises page/limit query values and computes the
// metadata block returned with paginated responses.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Meta is the pagination block of a paginated response.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Params holds a normalised page request.
type Params struct {
	Page  int
	Limit int
}

// New normalises raw values: page defaults to 1, limit to 10, and limit is
// capped at MaxLimit.
func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta builds the metadata block for total rows.
func (p Params) Meta(total int) Meta {
	return CalculateMeta(total, p.Page, p.Limit)
}

// CalculateMeta returns {page, limit, total, ceil(total/limit)}.
// A non-positive limit yields zero pages.
func CalculateMeta(total, page, limit int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
