package record_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpfonseca/finboard/internal/record"
)

func sampleRecords(n int) []*record.Record {
	records := make([]*record.Record, n)
	for i := 0; i < n; i++ {
		records[i] = &record.Record{
			ID:          int64(i + 1),
			Kind:        record.KindExpense,
			Date:        day(2024, 1, 1).AddDate(0, 0, i),
			Description: fmt.Sprintf("item %02d", i),
			Amount:      int64((i + 1) * 100),
			Category:    "general",
			Status:      record.StatusCompleted,
		}
	}

	return records
}

func TestRun_Pagination(t *testing.T) {
	records := sampleRecords(12)

	page := record.Run(records, record.Query{Page: 2, PageSize: 10})

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 12, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
}

func TestRun_PaginationCompleteness(t *testing.T) {
	records := sampleRecords(23)

	for _, pageSize := range []int{1, 3, 10, 23, 50} {
		q := record.Query{SortField: record.SortByAmount, Direction: record.Ascending, PageSize: pageSize}

		first := record.Run(records, q)

		var collected []int64

		for p := 1; p <= first.TotalPages; p++ {
			q.Page = p
			for _, r := range record.Run(records, q).Items {
				collected = append(collected, r.ID)
			}
		}

		require.Len(t, collected, 23, "pageSize=%d", pageSize)

		seen := make(map[int64]bool)
		for _, id := range collected {
			assert.False(t, seen[id], "duplicate id %d at pageSize=%d", id, pageSize)
			seen[id] = true
		}
	}
}

func TestRun_PagePastEnd(t *testing.T) {
	records := sampleRecords(5)

	page := record.Run(records, record.Query{Page: 4, PageSize: 10})

	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
}

func TestRun_EmptySetHasOnePage(t *testing.T) {
	page := record.Run(nil, record.Query{Page: 1, PageSize: 10})

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
}

func TestRun_DefaultSortIsDateDesc(t *testing.T) {
	records := sampleRecords(3)

	page := record.Run(records, record.Query{Page: 1, PageSize: 10})

	require.Len(t, page.Items, 3)
	assert.True(t, page.Items[0].Date.After(page.Items[1].Date))
	assert.True(t, page.Items[1].Date.After(page.Items[2].Date))
}

func TestRun_DirectionFlipMirrorsSort(t *testing.T) {
	records := []*record.Record{
		{ID: 1, Date: day(2024, 1, 3), Amount: 300, Description: "café", Category: "food", Client: "acme"},
		{ID: 2, Date: day(2024, 1, 1), Amount: 100, Description: "apple", Category: "zed", Client: "globex"},
		{ID: 3, Date: day(2024, 1, 2), Amount: 200, Description: "zebra", Category: "auto", Client: "initech"},
	}

	fields := []string{
		record.SortByDate,
		record.SortByAmount,
		record.SortByDescription,
		record.SortByCategory,
		record.SortByClient,
	}

	for _, field := range fields {
		t.Run(field, func(t *testing.T) {
			asc := record.Run(records, record.Query{SortField: field, Direction: record.Ascending, PageSize: 10})
			desc := record.Run(records, record.Query{SortField: field, Direction: record.Descending, PageSize: 10})

			reversed := make([]*record.Record, len(asc.Items))
			copy(reversed, asc.Items)
			slices.Reverse(reversed)

			assert.Equal(t, reversed, desc.Items)
		})
	}
}

func TestRun_DirectionFlipMirrorsSortWithTiedKeys(t *testing.T) {
	// Every field carries duplicates so the tie-break path is exercised.
	records := []*record.Record{
		{ID: 1, Date: day(2024, 1, 1), Amount: 100, Description: "apple", Category: "food", Client: "acme"},
		{ID: 2, Date: day(2024, 1, 1), Amount: 100, Description: "apple", Category: "food", Client: "globex"},
		{ID: 3, Date: day(2024, 1, 2), Amount: 100, Description: "zebra", Category: "auto", Client: "acme"},
		{ID: 4, Date: day(2024, 1, 2), Amount: 50, Description: "zebra", Category: "auto", Client: "globex"},
	}

	fields := []string{
		record.SortByDate,
		record.SortByAmount,
		record.SortByDescription,
		record.SortByCategory,
		record.SortByClient,
	}

	for _, field := range fields {
		t.Run(field, func(t *testing.T) {
			asc := record.Run(records, record.Query{SortField: field, Direction: record.Ascending, PageSize: 10})
			desc := record.Run(records, record.Query{SortField: field, Direction: record.Descending, PageSize: 10})

			reversed := make([]*record.Record, len(asc.Items))
			copy(reversed, asc.Items)
			slices.Reverse(reversed)

			assert.Equal(t, reversed, desc.Items)
		})
	}
}

func TestRun_SearchIsCaseInsensitive(t *testing.T) {
	records := []*record.Record{
		{ID: 1, Date: day(2024, 1, 1), Description: "Office Rent", Category: "housing"},
		{ID: 2, Date: day(2024, 1, 2), Description: "groceries", Category: "food"},
		{ID: 3, Date: day(2024, 1, 3), Description: "taxi", Category: "travel", Client: "RENTACAR"},
	}

	page := record.Run(records, record.Query{Search: "rent", PageSize: 10})

	require.Len(t, page.Items, 2)

	ids := []int64{page.Items[0].ID, page.Items[1].ID}
	assert.ElementsMatch(t, []int64{1, 3}, ids)
}

func TestRun_InclusionFilters(t *testing.T) {
	records := []*record.Record{
		{ID: 1, Date: day(2024, 1, 1), Category: "food", Status: record.StatusPending, Client: "acme"},
		{ID: 2, Date: day(2024, 1, 2), Category: "travel", Status: record.StatusCompleted, Client: "globex"},
		{ID: 3, Date: day(2024, 1, 3), Category: "food", Status: record.StatusCancelled, Client: "acme"},
	}

	type testCase struct {
		name    string
		query   record.Query
		wantIDs []int64
	}

	tests := []testCase{
		{
			name:    "ByCategory",
			query:   record.Query{Categories: []string{"food"}},
			wantIDs: []int64{1, 3},
		},
		{
			name:    "ByStatus",
			query:   record.Query{Statuses: []record.Status{record.StatusPending, record.StatusCompleted}},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "ByClient",
			query:   record.Query{Clients: []string{"globex"}},
			wantIDs: []int64{2},
		},
		{
			name:    "EmptySetsMeanNoFilter",
			query:   record.Query{},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name: "Combined",
			query: record.Query{
				Categories: []string{"food"},
				Statuses:   []record.Status{record.StatusPending},
			},
			wantIDs: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.PageSize = 10

			page := record.Run(records, tt.query)

			var ids []int64
			for _, r := range page.Items {
				ids = append(ids, r.ID)
			}

			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestRun_WindowFilterCountsPostFilter(t *testing.T) {
	records := sampleRecords(10)

	page := record.Run(records, record.Query{
		Window:   record.Window{Start: day(2024, 1, 3), End: day(2024, 1, 7)},
		Page:     1,
		PageSize: 2,
	})

	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 2)
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords(6)

	original := make([]*record.Record, len(records))
	copy(original, records)

	record.Run(records, record.Query{SortField: record.SortByAmount, Direction: record.Descending, PageSize: 3})

	assert.Equal(t, original, records)

	for i := range records {
		assert.Same(t, original[i], records[i])
	}
}

func TestRun_NormalizesDegenerateSpec(t *testing.T) {
	records := sampleRecords(3)

	page := record.Run(records, record.Query{Page: 0, PageSize: 0})

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Len(t, page.Items, 3)
}
