package report

import "time"

// isWorkday reports whether d falls on the business calendar: Monday
// through Saturday count, Sunday does not.
func isWorkday(d time.Time) bool {
	return d.Weekday() != time.Sunday
}

// RemainingWorkdays counts the workdays left in (month, year) as seen
// from today. A past month has none left; a future month still has all
// of its workdays; within the current month the count runs from today
// (included, when today is a workday) through the last calendar day.
func RemainingWorkdays(today time.Time, month, year int) int {
	ty, tm := today.Year(), int(today.Month())

	// strictly in the past
	if year < ty || (year == ty && month < tm) {
		return 0
	}

	startDay := 1
	if year == ty && month == tm {
		startDay = today.Day()
	}

	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	count := 0
	for day := startDay; day <= lastDay; day++ {
		if isWorkday(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)) {
			count++
		}
	}
	return count
}
