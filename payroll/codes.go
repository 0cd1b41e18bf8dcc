/*
codes.go - Area code, description, and reasoning synthesis

PURPOSE:
  Builds the three human/SAP-facing strings for one payroll area:
  - MakeCode:        exactly 2 characters (SAP ABKRS field)
  - MakeDescription: at most 20 characters (SAP text field)
  - MakeReasoning:   ordered audit trail of why the area exists

UNIQUENESS:
  MakeCode gives no uniqueness guarantee. Two unions whose codes share a
  first digit collide, and duplicate profile entries collide trivially. The
  validator reports collisions after the fact; a consultant renames by hand.
*/
package payroll

import "fmt"

// =============================================================================
// AREA CODE
// =============================================================================

// MakeCode synthesizes the 2-character payroll area code.
//
// First character: uppercase first letter of the frequency type, except
// semimonthly which is always 'S' (keeps it from reading as an 'M' monthly
// or clashing with "services"-style business units on the second slot).
//
// Second character, first match wins:
//  1. qualifying union        -> first digit of the union code, else 'U'
//  2. affecting time zone     -> first character of the zone code
//  3. splitting business unit -> uppercase first letter of the unit code
//  4. pay day                 -> F/T/C, anything else 'X'
func MakeCode(freq PayFrequency, bu BusinessUnit, union *Union, tz *TimeZone) string {
	return freqChar(freq.Type) + secondChar(freq, bu, union, tz)
}

func freqChar(t FrequencyType) string {
	if t == FreqSemimonthly {
		return "S"
	}
	if t == "" {
		return "X"
	}
	return string(upperByte(t[0]))
}

func secondChar(freq PayFrequency, bu BusinessUnit, union *Union, tz *TimeZone) string {
	if union != nil && (union.UniqueCalendar || union.UniqueFunding) {
		for i := 0; i < len(union.Code); i++ {
			if union.Code[i] >= '0' && union.Code[i] <= '9' {
				return string(union.Code[i])
			}
		}
		return "U"
	}
	if tz != nil && tz.AffectsProcessing && tz.Code != "" {
		return string(tz.Code[0])
	}
	if bu.RequiresSeparateArea && bu.Code != SentinelAllUnits && bu.Code != "" {
		return string(upperByte(bu.Code[0]))
	}
	switch freq.PayDay {
	case PayDayFriday:
		return "F"
	case PayDayThursday:
		return "T"
	case PayDayCurrent:
		return "C"
	default:
		return "X"
	}
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// =============================================================================
// DESCRIPTION
// =============================================================================

var freqAbbrev = map[FrequencyType]string{
	FreqWeekly:      "Wkly",
	FreqBiweekly:    "BiWk",
	FreqSemimonthly: "SemiMo",
	FreqMonthly:     "Mo",
}

var payDayAbbrev = map[PayDay]string{
	PayDayFriday:   "Fri",
	PayDayThursday: "Thu",
	PayDayCurrent:  "Cur",
}

// MakeDescription builds the SAP area text, space-separated:
// frequency abbreviation, then the pay-day abbreviation (only when nothing
// else distinguishes the area), then business unit (8 chars), time zone
// code, union code. Hard-truncated to 20 characters - SAP's field length
// wins over word boundaries, and mid-word cuts are accepted lossy behavior.
func MakeDescription(freq PayFrequency, bu BusinessUnit, union *Union, tz *TimeZone) string {
	unionSplit := union != nil && (union.UniqueCalendar || union.UniqueFunding)
	tzSplit := tz != nil && tz.AffectsProcessing
	buSplit := bu.RequiresSeparateArea && bu.Code != SentinelAllUnits

	desc := abbrevFor(freq.Type)
	if !unionSplit && !tzSplit && !buSplit {
		desc += " " + payAbbrevFor(freq.PayDay)
	}
	if buSplit {
		desc += " " + truncate(bu.Name, 8)
	}
	if tzSplit {
		desc += " " + tz.Code
	}
	if unionSplit {
		desc += " " + union.Code
	}
	return truncate(desc, 20)
}

func abbrevFor(t FrequencyType) string {
	if a, ok := freqAbbrev[t]; ok {
		return a
	}
	return truncate(string(t), 4)
}

func payAbbrevFor(p PayDay) string {
	if a, ok := payDayAbbrev[p]; ok {
		return a
	}
	return "Cus"
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// =============================================================================
// REASONING
// =============================================================================

// MakeReasoning returns the audit lines for one area. The first line always
// states frequency and headcount; the rest appear only for the splitting
// causes that are active, in fixed order: business unit, union calendar,
// union funding, time zone.
func MakeReasoning(freq PayFrequency, bu BusinessUnit, union *Union, tz *TimeZone) []string {
	lines := []string{
		fmt.Sprintf("Pay frequency: %s (%d employees)", freq.Type, freq.EmployeeCount),
	}
	if bu.RequiresSeparateArea && bu.Code != SentinelAllUnits {
		lines = append(lines, fmt.Sprintf("Business unit %s requires a separate payroll area", bu.Name))
	}
	if union != nil && union.UniqueCalendar {
		lines = append(lines, fmt.Sprintf("Union %s has a unique payroll calendar", union.Name))
	}
	if union != nil && union.UniqueFunding {
		lines = append(lines, fmt.Sprintf("Union %s has unique funding requirements", union.Name))
	}
	if tz != nil && tz.AffectsProcessing {
		lines = append(lines, fmt.Sprintf("Time zone %s affects payroll processing", tz.Name))
	}
	return lines
}
