// Package recurring turns recurring transaction rules into real ledger
// entries once they fall due.
package recurring

import (
	"fmt"
	"time"

	"budget-tracker/internal/domain"
)

// maxOccurrences bounds how many entries a single run may post for one rule.
const maxOccurrences = 400

func ValidFrequency(f domain.Frequency) bool {
	switch f {
	case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyBiweekly,
		domain.FrequencyMonthly, domain.FrequencyQuarterly, domain.FrequencyYearly:
		return true
	}
	return false
}

// Next returns the occurrence after current. Month based frequencies keep the
// day of month of anchor and clamp it to the length of the target month, so
// a rule started on Jan 31 fires on Feb 28 (or 29) and then on Mar 31.
func Next(f domain.Frequency, current, anchor domain.Date) (domain.Date, error) {
	switch f {
	case domain.FrequencyDaily:
		return current.AddDays(1), nil
	case domain.FrequencyWeekly:
		return current.AddDays(7), nil
	case domain.FrequencyBiweekly:
		return current.AddDays(14), nil
	case domain.FrequencyMonthly:
		return addMonths(current, 1, anchor.Day()), nil
	case domain.FrequencyQuarterly:
		return addMonths(current, 3, anchor.Day()), nil
	case domain.FrequencyYearly:
		return addMonths(current, 12, anchor.Day()), nil
	}
	return domain.Date{}, fmt.Errorf("unknown frequency %q", f)
}

func addMonths(d domain.Date, months, day int) domain.Date {
	first := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return domain.NewDate(first.Year(), first.Month(), day)
}

// Plan is what a run should do with one rule.
type Plan struct {
	Dates       []domain.Date
	NextDueDate domain.Date
	Active      bool
}

// PlanDue lists every occurrence of r due on or before today (and not past
// its end date), plus the next due date afterwards. A rule whose next
// occurrence lies beyond its end date becomes inactive.
func PlanDue(r domain.RecurringTransaction, today domain.Date) (Plan, error) {
	plan := Plan{NextDueDate: r.NextDueDate, Active: r.IsActive}
	if !r.IsActive {
		return plan, nil
	}

	next := r.NextDueDate
	for !next.After(today.Time) && len(plan.Dates) < maxOccurrences {
		if r.EndDate != nil && next.After(r.EndDate.Time) {
			break
		}
		plan.Dates = append(plan.Dates, next)

		var err error
		next, err = Next(r.Frequency, next, r.StartDate)
		if err != nil {
			return Plan{}, err
		}
	}

	plan.NextDueDate = next
	if r.EndDate != nil && next.After(r.EndDate.Time) {
		plan.Active = false
	}
	return plan, nil
}
