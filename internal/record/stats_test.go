package record_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rpfonseca/finboard/internal/record"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	records := []*record.Record{
		{Amount: 10000, Status: record.StatusCompleted, Date: day(2024, 3, 1)},
		{Amount: 5000, Status: record.StatusPending, Date: day(2024, 3, 10)},
		{Amount: 2500, Status: record.StatusPending, Date: day(2024, 3, 20)},
	}

	got := record.Summarize(records, record.Window{})

	assert.Equal(t, int64(17500), got.TotalAmount)
	assert.Equal(t, int64(7500), got.PendingAmount)
	assert.Equal(t, 2, got.PendingCount)
	assert.Equal(t, 3, got.TotalCount)
	assert.InDelta(t, 5833.333333, got.AverageAmount, 1e-6)
}

func TestSummarize_Empty(t *testing.T) {
	got := record.Summarize(nil, record.Window{})

	assert.Equal(t, int64(0), got.TotalAmount)
	assert.Equal(t, 0, got.TotalCount)
	assert.Equal(t, float64(0), got.AverageAmount)
}

func TestSummarize_WindowBoundsInclusive(t *testing.T) {
	records := []*record.Record{
		{Amount: 100, Status: record.StatusCompleted, Date: day(2024, 2, 29)},
		{Amount: 200, Status: record.StatusCompleted, Date: day(2024, 3, 1)},
		{Amount: 400, Status: record.StatusCompleted, Date: day(2024, 3, 31)},
		{Amount: 800, Status: record.StatusCompleted, Date: day(2024, 4, 1)},
	}

	window := record.Window{Start: day(2024, 3, 1), End: day(2024, 3, 31)}

	got := record.Summarize(records, window)

	assert.Equal(t, int64(600), got.TotalAmount)
	assert.Equal(t, 2, got.TotalCount)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	records := []*record.Record{
		{Amount: 100, Status: record.StatusCompleted, Date: day(2024, 1, 1)},
		{Amount: 250, Status: record.StatusPending, Date: day(2024, 1, 2)},
		{Amount: 75, Status: record.StatusCancelled, Date: day(2024, 1, 3)},
		{Amount: 3000, Status: record.StatusPending, Date: day(2024, 1, 4)},
		{Amount: 42, Status: record.StatusCompleted, Date: day(2024, 1, 5)},
	}

	want := record.Summarize(records, record.Window{})

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10; i++ {
		shuffled := make([]*record.Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		assert.Equal(t, want, record.Summarize(shuffled, record.Window{}))
	}
}

func TestSummarizeRevenue_TopClient(t *testing.T) {
	records := []*record.Record{
		{Client: "A", Amount: 10000, Status: record.StatusCompleted, Date: day(2024, 3, 1)},
		{Client: "B", Amount: 15000, Status: record.StatusCompleted, Date: day(2024, 3, 2)},
		{Client: "A", Amount: 4000, Status: record.StatusCompleted, Date: day(2024, 3, 3)},
	}

	got := record.SummarizeRevenue(records, record.Window{}, day(2024, 3, 15))

	assert.Equal(t, "B", got.TopClient)
	assert.Equal(t, int64(15000), got.TopClientAmount)
}

func TestSummarizeRevenue_TopClientTieFirstWins(t *testing.T) {
	records := []*record.Record{
		{Client: "A", Amount: 5000, Status: record.StatusCompleted, Date: day(2024, 3, 1)},
		{Client: "B", Amount: 5000, Status: record.StatusCompleted, Date: day(2024, 3, 2)},
	}

	got := record.SummarizeRevenue(records, record.Window{}, day(2024, 3, 15))

	assert.Equal(t, "A", got.TopClient)
}

func TestSummarizeRevenue_TopClientEmptySet(t *testing.T) {
	got := record.SummarizeRevenue(nil, record.Window{}, day(2024, 3, 15))

	assert.Equal(t, "", got.TopClient)
	assert.Equal(t, int64(0), got.TopClientAmount)
}

func TestSummarizeRevenue_PercentChange(t *testing.T) {
	now := day(2024, 3, 15)

	records := []*record.Record{
		{Client: "A", Amount: 10000, Status: record.StatusCompleted, Date: day(2024, 2, 10)},
		{Client: "A", Amount: 15000, Status: record.StatusCompleted, Date: day(2024, 3, 5)},
	}

	got := record.SummarizeRevenue(records, record.Window{}, now)

	assert.InDelta(t, 50.0, got.PercentChange, 1e-9)
	assert.False(t, got.NoPriorBaseline)
}

func TestSummarizeRevenue_PercentChangeIgnoresWindow(t *testing.T) {
	now := day(2024, 3, 15)

	records := []*record.Record{
		{Client: "A", Amount: 10000, Status: record.StatusCompleted, Date: day(2024, 2, 10)},
		{Client: "A", Amount: 5000, Status: record.StatusCompleted, Date: day(2024, 3, 5)},
	}

	// Window excludes both months entirely.
	window := record.Window{Start: day(2023, 1, 1), End: day(2023, 12, 31)}

	got := record.SummarizeRevenue(records, window, now)

	assert.Equal(t, 0, got.TotalCount)
	assert.InDelta(t, -50.0, got.PercentChange, 1e-9)
}

func TestSummarizeRevenue_NoPriorBaseline(t *testing.T) {
	now := day(2024, 3, 15)

	records := []*record.Record{
		{Client: "A", Amount: 10000, Status: record.StatusCompleted, Date: day(2024, 3, 5)},
	}

	got := record.SummarizeRevenue(records, record.Window{}, now)

	assert.Equal(t, float64(0), got.PercentChange)
	assert.True(t, got.NoPriorBaseline)
}
