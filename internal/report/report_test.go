package report

import (
	"testing"
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAccumulatedAndCompletion(t *testing.T) {
	entries := []models.SalesEntry{
		{Date: "2026-03-02", AmountCents: 20_000_00, Tickets: 4},
		{Date: "2026-03-03", AmountCents: 15_000_00, Tickets: 2},
	}

	acc := AccumulatedCents(entries)
	assert.Equal(t, int64(35_000_00), acc)

	// 35,000 of 550,000 is ~6.36%
	pct := CompletionPercent(55_000_000, acc)
	assert.InDelta(t, 6.3636, pct, 0.001)

	assert.Equal(t, int64(51_500_000), Remaining(55_000_000, acc))
}

func TestCompletionSmallNumbers(t *testing.T) {
	entries := []models.SalesEntry{
		{AmountCents: 100},
		{AmountCents: 250},
	}
	acc := AccumulatedCents(entries)
	assert.Equal(t, int64(350), acc)
	assert.InDelta(t, 35.0, CompletionPercent(1000, acc), 1e-9)
	assert.Equal(t, int64(650), Remaining(1000, acc))
}

func TestCompletionPercentZeroTarget(t *testing.T) {
	assert.Equal(t, 0.0, CompletionPercent(0, 1000))
	assert.Equal(t, 0.0, CompletionPercent(-5, 1000))
}

func TestRemainingClampsAtZero(t *testing.T) {
	assert.Equal(t, int64(0), Remaining(100, 150))
	assert.Equal(t, int64(0), Remaining(100, 100))
	assert.Equal(t, int64(25), Remaining(100, 75))
}

func TestTickets(t *testing.T) {
	entries := []models.SalesEntry{
		{Date: "2026-03-02", AmountCents: 100, Tickets: 4},
		{Date: "2026-03-03", AmountCents: 100, Tickets: 0}, // counts as one
		{Date: "2026-03-03", AmountCents: 100, Tickets: 2},
	}

	assert.Equal(t, 7, TicketsTotal(entries))
	assert.Equal(t, 3, TicketsOn(entries, "2026-03-03"))
	assert.Equal(t, 0, TicketsOn(entries, "2026-03-10"))
}

func TestAveragePerTicket(t *testing.T) {
	// 350 units of money over 10 tickets
	assert.InDelta(t, 35.0, AveragePerTicket(350, 10), 1e-9)
	assert.Equal(t, 0.0, AveragePerTicket(350, 0))
}

func TestProjections(t *testing.T) {
	// target 1000, accumulated 650, 5 workdays left
	got := Projections(1000, 650, 5)
	assert.Len(t, got, 5)

	// 80% tier: target 800, shortfall 150, 30/day
	assert.Equal(t, 80, got[0].Percent)
	assert.Equal(t, int64(800), got[0].Target)
	assert.Equal(t, int64(150), got[0].Shortfall)
	assert.InDelta(t, 30.0, got[0].DailyRequired, 1e-9)

	// 115% tier: target 1150, shortfall 500, 100/day
	assert.Equal(t, 115, got[4].Percent)
	assert.Equal(t, int64(1150), got[4].Target)
	assert.Equal(t, int64(500), got[4].Shortfall)
	assert.InDelta(t, 100.0, got[4].DailyRequired, 1e-9)

	// shortfall never shrinks as the tier grows
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Shortfall, got[i-1].Shortfall)
	}
}

func TestProjectionsGoalExceeded(t *testing.T) {
	got := Projections(1000, 1200, 5)

	// everything up to 110% is already covered
	assert.Equal(t, int64(0), got[0].Shortfall) // 80%
	assert.Equal(t, int64(0), got[2].Shortfall) // 100%
	assert.Equal(t, int64(0), got[3].Shortfall) // 110%
	assert.Equal(t, 0.0, got[3].DailyRequired)

	// 115% tier target 1150 is also below 1200, so it clamps too
	assert.Equal(t, int64(0), got[4].Shortfall)
}

func TestProjectionsNoWorkdaysLeft(t *testing.T) {
	got := Projections(1000, 100, 0)
	for _, p := range got {
		assert.Equal(t, 0.0, p.DailyRequired)
	}
}

func TestRemainingWorkdays(t *testing.T) {
	// Monday 2026-03-02. March 2026 has 31 days; Sundays are the
	// 1st, 8th, 15th, 22nd and 29th.
	monday := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	// from the 2nd to the 31st: 30 days minus 4 Sundays
	assert.Equal(t, 26, RemainingWorkdays(monday, 3, 2026))

	// past month
	assert.Equal(t, 0, RemainingWorkdays(monday, 2, 2026))
	assert.Equal(t, 0, RemainingWorkdays(monday, 12, 2025))

	// future month gets all of its workdays: April 2026 has 30 days
	// and 4 Sundays
	assert.Equal(t, 26, RemainingWorkdays(monday, 4, 2026))
}

func TestRemainingWorkdaysWeekendBoundary(t *testing.T) {
	// Saturday 2026-03-28 counts itself; Sunday the 29th does not.
	saturday := time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)
	// 28 Sat, 29 Sun, 30 Mon, 31 Tue -> 3 workdays
	assert.Equal(t, 3, RemainingWorkdays(saturday, 3, 2026))

	sunday := time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC)
	// 29 Sun, 30 Mon, 31 Tue -> 2 workdays
	assert.Equal(t, 2, RemainingWorkdays(sunday, 3, 2026))
}

func TestRemainingWorkdaysLeapFebruary(t *testing.T) {
	// Viewed from January, February 2024 is a future month with 29
	// days and 4 Sundays (4, 11, 18, 25).
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 25, RemainingWorkdays(jan, 2, 2024))
}
