// Package report computes the derived numbers the dashboard shows for
// a goal and its entries: accumulated totals, completion percentages,
// ticket statistics and the tiered daily-pace projections. Everything
// here is a pure function over already-loaded records.
package report

import (
	"github.com/GBronzi/Reporte-de-ventas/internal/models"
)

// Tiers are the completion thresholds the projection table displays.
var Tiers = []int{80, 90, 100, 110, 115}

// AccumulatedCents sums the amounts of all sales entries.
func AccumulatedCents(entries []models.SalesEntry) int64 {
	var sum int64
	for i := range entries {
		sum += entries[i].AmountCents
	}
	return sum
}

// AccumulatedUnits sums the unit counts of all unit entries.
func AccumulatedUnits(entries []models.UnitEntry) int64 {
	var sum int64
	for i := range entries {
		sum += entries[i].Units
	}
	return sum
}

// CompletionPercent is accumulated/target as a percentage, 0 for a
// missing or zero target.
func CompletionPercent(target, accumulated int64) float64 {
	if target <= 0 {
		return 0
	}
	return float64(accumulated) / float64(target) * 100
}

// Remaining is the distance left to the target, clamped at zero once
// the goal is met or exceeded.
func Remaining(target, accumulated int64) int64 {
	if r := target - accumulated; r > 0 {
		return r
	}
	return 0
}

// TicketsTotal sums ticket counts over all entries. An entry recorded
// without a ticket count stands for a single ticket.
func TicketsTotal(entries []models.SalesEntry) int {
	total := 0
	for i := range entries {
		if entries[i].Tickets > 0 {
			total += entries[i].Tickets
		} else {
			total++
		}
	}
	return total
}

// TicketsOn sums ticket counts of the entries dated exactly date.
func TicketsOn(entries []models.SalesEntry, date string) int {
	total := 0
	for i := range entries {
		if entries[i].Date != date {
			continue
		}
		if entries[i].Tickets > 0 {
			total += entries[i].Tickets
		} else {
			total++
		}
	}
	return total
}

// AveragePerTicket is accumulated divided by the ticket count, 0 when
// no tickets exist.
func AveragePerTicket(accumulated int64, tickets int) float64 {
	if tickets <= 0 {
		return 0
	}
	return float64(accumulated) / float64(tickets)
}

// TierProjection is one row of the projection table: the scaled
// target, what is still missing to reach it and the daily pace needed
// over the remaining workdays.
type TierProjection struct {
	Percent       int     `json:"percent"`
	Target        int64   `json:"target"`
	Shortfall     int64   `json:"shortfall"`
	DailyRequired float64 `json:"daily_required"`
}

// Projections computes one TierProjection per tier. Shortfall is
// clamped at zero, and the daily pace is zero when no workdays remain.
// For a fixed accumulated value the shortfall grows with the tier.
func Projections(target, accumulated int64, remainingWorkdays int) []TierProjection {
	out := make([]TierProjection, 0, len(Tiers))
	for _, pct := range Tiers {
		tierTarget := target * int64(pct) / 100
		shortfall := tierTarget - accumulated
		if shortfall < 0 {
			shortfall = 0
		}
		daily := 0.0
		if remainingWorkdays > 0 {
			daily = float64(shortfall) / float64(remainingWorkdays)
		}
		out = append(out, TierProjection{
			Percent:       pct,
			Target:        tierTarget,
			Shortfall:     shortfall,
			DailyRequired: daily,
		})
	}
	return out
}
