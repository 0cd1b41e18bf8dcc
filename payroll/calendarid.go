/*
calendarid.go - Frequency/pattern/payday to SAP calendar ID mapping

PURPOSE:
  Resolves the SAP period-parameter (calendar) identifier for one pay
  frequency. Many payroll areas can share one calendar ID; the ID depends
  only on the (type, pattern, pay day) combination, plus a +100 offset for
  union-owned calendars.

NUMBERING:
  The union offset is a simplified placeholder allocation, not a real SAP
  numbering strategy. A base ID of 900 or more would collide with other
  offsets, and the unknown sentinel "99" offsets to the equally arbitrary
  "199". Consultants review the assignments before import.
*/
package payroll

import (
	"fmt"
	"strconv"
)

// UnknownCalendarID is the sentinel for combinations the table doesn't know.
const UnknownCalendarID = "99"

// calendarIDs maps "{type}-{pattern}-{payday}" to a fixed calendar ID.
// Semimonthly and monthly keys always use their logically fixed patterns.
var calendarIDs = map[string]string{
	"weekly-mon-sun-friday":   "80",
	"weekly-mon-sun-thursday": "81",
	"weekly-sun-sat-friday":   "82",
	"weekly-sun-sat-thursday": "83",

	"biweekly-mon-sun-friday":   "20",
	"biweekly-mon-sun-thursday": "21",
	"biweekly-sun-sat-friday":   "22",
	"biweekly-sun-sat-thursday": "23",

	"semimonthly-1-15_16-end-friday":   "30",
	"semimonthly-1-15_16-end-thursday": "31",

	"monthly-1-end-friday":   "40",
	"monthly-1-end-thursday": "41",
}

// ResolveCalendarID returns the calendar ID for a frequency. When the
// frequency belongs to a union with its own calendar, the base ID is offset
// by 100; a base that doesn't parse as a number resolves to the sentinel.
func ResolveCalendarID(freq PayFrequency, unionHasUniqueCalendar bool) string {
	if unionHasUniqueCalendar {
		base := ResolveCalendarID(freq, false)
		n, err := strconv.Atoi(base)
		if err != nil {
			return UnknownCalendarID
		}
		return strconv.Itoa(n + 100)
	}

	pattern := freq.CalendarPattern
	switch freq.Type {
	case FreqSemimonthly:
		pattern = PatternSemimonthly
	case FreqMonthly:
		pattern = PatternMonthly
	}

	key := fmt.Sprintf("%s-%s-%s", freq.Type, pattern, freq.PayDay)
	if id, ok := calendarIDs[key]; ok {
		return id
	}
	return UnknownCalendarID
}
