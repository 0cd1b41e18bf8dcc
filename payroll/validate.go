/*
validate.go - Cross-checks between a profile and its derived areas

PURPOSE:
  Validates a generated (or hand-edited) area list against the company
  profile: headcount coverage, union calendar requirements, duplicate codes.
  Every rule runs independently; nothing short-circuits. Warnings inform,
  errors invalidate.
*/
package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validate recomputes the validation result for an area list. IsValid is
// strictly "no errors"; warnings never affect validity.
func Validate(profile CompanyProfile, areas []PayrollArea) ValidationResult {
	result := ValidationResult{
		TotalEmployees: profile.TotalEmployees,
		Warnings:       []string{},
		Errors:         []string{},
	}

	for _, a := range areas {
		result.EmployeesCovered += a.EmployeeCount
	}

	checkCoverage(&result)
	checkUnionCalendars(&result, profile.Unions, areas)
	checkDuplicateCodes(&result, areas)

	result.IsValid = len(result.Errors) == 0
	return result
}

// checkCoverage compares covered headcount to the company total.
// Under-coverage is a warning (employees may simply be out of payroll
// scope); over-coverage means double counting and is an error.
func checkCoverage(result *ValidationResult) {
	covered, total := result.EmployeesCovered, result.TotalEmployees

	if covered < total {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Only %d of %d employees are covered by the generated payroll areas (%s%% coverage)",
			covered, total, coveragePercent(covered, total)))
	}
	if covered > total {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Payroll areas cover %d employees but the company total is %d - check for double counting",
			covered, total))
	}
}

// coveragePercent renders covered/total as an exact one-decimal percentage.
func coveragePercent(covered, total int) string {
	if total == 0 {
		return "0"
	}
	pct := decimal.NewFromInt(int64(covered) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
	return pct.String()
}

// checkUnionCalendars requires every unique-calendar union to be referenced
// by at least one area.
func checkUnionCalendars(result *ValidationResult, unions []Union, areas []PayrollArea) {
	for _, u := range unions {
		if !u.UniqueCalendar {
			continue
		}
		found := false
		for _, a := range areas {
			if a.Union == u.Code {
				found = true
				break
			}
		}
		if !found {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Union %s requires a unique payroll calendar but no payroll area references it", u.Code))
		}
	}
}

// checkDuplicateCodes reports area codes that occur more than once,
// first-occurrence order preserved.
func checkDuplicateCodes(result *ValidationResult, areas []PayrollArea) {
	counts := make(map[string]int, len(areas))
	for _, a := range areas {
		counts[a.Code]++
	}

	var dups []string
	reported := make(map[string]bool)
	for _, a := range areas {
		if counts[a.Code] > 1 && !reported[a.Code] {
			dups = append(dups, a.Code)
			reported[a.Code] = true
		}
	}

	if len(dups) > 0 {
		result.Errors = append(result.Errors,
			"Duplicate payroll area codes: "+strings.Join(dups, ", "))
	}
}
