// internal/repository/page.go
package repository

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// sortColumns is the allow-list of sortable fields, mapped to qualified
// column names so user fields sort through the joined users table. Anything
// else falls back to submissions.created_at.
var sortColumns = map[string]string{
	"createdAt":  "submissions.created_at",
	"updatedAt":  "submissions.updated_at",
	"firstName":  "users.first_name",
	"lastName":   "users.last_name",
	"email":      "users.email",
	"status":     "submissions.status",
	"created_at": "submissions.created_at",
	"updated_at": "submissions.updated_at",
	"first_name": "users.first_name",
	"last_name":  "users.last_name",
}

// Page describes a pagination request. Pages are 1-based.
type Page struct {
	Number int
	Size   int
	SortBy string
	Order  string
}

// Normalize clamps the page to the allowed bounds and restricts sorting to
// the allow-list. The default order is created_at descending.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	col, ok := sortColumns[p.SortBy]
	if !ok {
		col = "submissions.created_at"
	}
	p.SortBy = col
	if o := strings.ToLower(p.Order); o == "asc" {
		p.Order = "asc"
	} else {
		p.Order = "desc"
	}
	return p
}

// Offset is the row offset of the normalized page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// OrderClause is the SQL order expression of the normalized page.
func (p Page) OrderClause() string {
	return p.SortBy + " " + p.Order
}
