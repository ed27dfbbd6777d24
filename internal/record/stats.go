package record

import "time"

// Summary is the fixed aggregate reduction of a record set.
type Summary struct {
	TotalAmount   int64
	PendingAmount int64
	PendingCount  int
	TotalCount    int
	AverageAmount float64
}

// Summarize reduces records inside the window to a Summary. Both window
// bounds are inclusive. AverageAmount is 0 for an empty set.
func Summarize(records []*Record, window Window) Summary {
	var s Summary

	for _, r := range records {
		if !window.Contains(r.Date) {
			continue
		}

		s.TotalAmount += r.Amount
		s.TotalCount++

		if r.Status == StatusPending {
			s.PendingAmount += r.Amount
			s.PendingCount++
		}
	}

	if s.TotalCount > 0 {
		s.AverageAmount = float64(s.TotalAmount) / float64(s.TotalCount)
	}

	return s
}

// RevenueSummary extends Summary with the month-over-month change and the
// highest-grossing client.
//
// PercentChange compares the calendar month containing now against the month
// before it, over the full record set regardless of window. When the previous
// month has no revenue the change is reported as 0 with NoPriorBaseline set,
// so callers can tell a flat month from a missing denominator.
type RevenueSummary struct {
	Summary
	PercentChange   float64
	NoPriorBaseline bool
	TopClient       string
	TopClientAmount int64
}

// SummarizeRevenue computes the revenue aggregate for records in the window.
func SummarizeRevenue(records []*Record, window Window, now time.Time) RevenueSummary {
	rs := RevenueSummary{Summary: Summarize(records, window)}

	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart := currentStart.AddDate(0, -1, 0)
	nextStart := currentStart.AddDate(0, 1, 0)

	var current, previous int64

	for _, r := range records {
		switch {
		case !r.Date.Before(currentStart) && r.Date.Before(nextStart):
			current += r.Amount
		case !r.Date.Before(previousStart) && r.Date.Before(currentStart):
			previous += r.Amount
		}
	}

	if previous == 0 {
		rs.NoPriorBaseline = true
	} else {
		rs.PercentChange = float64(current-previous) / float64(previous) * 100
	}

	// Top client: strictly-greater comparison, first encountered wins ties.
	totals := make(map[string]int64)

	var clients []string

	for _, r := range records {
		if !window.Contains(r.Date) {
			continue
		}

		if _, seen := totals[r.Client]; !seen {
			clients = append(clients, r.Client)
		}

		totals[r.Client] += r.Amount
	}

	for _, c := range clients {
		if totals[c] > rs.TopClientAmount {
			rs.TopClient = c
			rs.TopClientAmount = totals[c]
		}
	}

	return rs
}
