package record

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sortable fields for table listings.
const (
	SortByDate        = "date"
	SortByAmount      = "amount"
	SortByDescription = "description"
	SortByCategory    = "category"
	SortByClient      = "client"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

const defaultPageSize = 20

// Query describes one page of a filtered, sorted table view.
// Empty inclusion sets mean "no filter on this field".
type Query struct {
	Search     string
	Categories []string
	Statuses   []Status
	Clients    []string
	Window     Window
	SortField  string
	Direction  Direction
	Page       int
	PageSize   int
}

// Page is one slice of the filtered set plus pagination metadata.
type Page struct {
	Items      []*Record
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}

// Run filters, counts, sorts and slices records according to q, in that
// order. TotalCount covers the whole filtered set, not the returned page.
// A page past the end yields empty Items; TotalPages is never below 1.
// The input slice is not mutated.
func Run(records []*Record, q Query) Page {
	q = q.normalized()

	filtered := make([]*Record, 0, len(records))

	for _, r := range records {
		if q.matches(r) {
			filtered = append(filtered, r)
		}
	}

	totalCount := len(filtered)

	totalPages := (totalCount + q.PageSize - 1) / q.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	sortRecords(filtered, q.SortField, q.Direction)

	start := (q.Page - 1) * q.PageSize
	if start > totalCount {
		start = totalCount
	}

	end := start + q.PageSize
	if end > totalCount {
		end = totalCount
	}

	return Page{
		Items:      filtered[start:end],
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
}

func (q Query) normalized() Query {
	if q.SortField == "" {
		q.SortField = SortByDate
	}

	if q.Direction != Ascending {
		q.Direction = Descending
	}

	if q.Page < 1 {
		q.Page = 1
	}

	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}

	return q
}

func (q Query) matches(r *Record) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)

		if !strings.Contains(strings.ToLower(r.Description), needle) &&
			!strings.Contains(strings.ToLower(r.Category), needle) &&
			!strings.Contains(strings.ToLower(r.Client), needle) &&
			!strings.Contains(strings.ToLower(r.Notes), needle) {
			return false
		}
	}

	if len(q.Categories) > 0 && !slices.Contains(q.Categories, r.Category) {
		return false
	}

	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, r.Status) {
		return false
	}

	if len(q.Clients) > 0 && !slices.Contains(q.Clients, r.Client) {
		return false
	}

	return q.Window.Contains(r.Date)
}

func sortRecords(records []*Record, field string, dir Direction) {
	// Collators are stateful, so build one per call rather than sharing.
	col := collate.New(language.Und)

	// Ties fall through to the ID so the order is total. That keeps
	// descending the exact reverse of ascending even for duplicate keys.
	less := func(a, b *Record) bool {
		switch field {
		case SortByAmount:
			if a.Amount != b.Amount {
				return a.Amount < b.Amount
			}
		case SortByDescription:
			if c := col.CompareString(a.Description, b.Description); c != 0 {
				return c < 0
			}
		case SortByCategory:
			if c := col.CompareString(a.Category, b.Category); c != 0 {
				return c < 0
			}
		case SortByClient:
			if c := col.CompareString(a.Client, b.Client); c != 0 {
				return c < 0
			}
		default:
			if !a.Date.Equal(b.Date) {
				return a.Date.Before(b.Date)
			}
		}

		return a.ID < b.ID
	}

	sort.Slice(records, func(i, j int) bool {
		if dir == Descending {
			return less(records[j], records[i])
		}

		return less(records[i], records[j])
	})
}
