/*
derive.go - Derived leave values

PURPOSE:
  Pure computations over leave entities: the filter-dimension year, the
  carry-forward cap at period end, eligibility against the type's delay,
  and working-day counting against a policy calendar. Nothing here
  mutates its input.
*/
package leave

import (
	"fmt"

	"github.com/warp/admin-core/generic"
)

// Year derives the calendar year of a record from its start date. This
// is the filter dimension; it does not read any stored year field.
func Year(startDate generic.Date) int {
	return startDate.Year()
}

// CheckYear verifies the stored year agrees with the derived one.
// A mismatch is a data-integrity condition, never silently resolved.
func CheckYear(h LeaveHistory) error {
	derived := Year(h.StartDate)
	if h.Year != derived {
		return fmt.Errorf("%w: history %s stores year %d, start date derives %d",
			generic.ErrInconsistentState, h.ID, h.Year, derived)
	}
	return nil
}

// CarryForwardCap returns the days that roll into the next period:
// min(unusedDays, MaxCarryForward) when the type carries forward, else 0.
// Negative unusedDays is invalid input.
func CarryForwardCap(lt LeaveType, unusedDays int) (int, error) {
	if unusedDays < 0 {
		return 0, fmt.Errorf("%w: negative unused days %d for leave type %q",
			generic.ErrInvalidState, unusedDays, lt.Name)
	}
	if !lt.CarryForward {
		return 0, nil
	}
	if unusedDays < lt.MaxCarryForward {
		return unusedDays, nil
	}
	return lt.MaxCarryForward, nil
}

// EligibleOn reports whether an employee who joined on joinDate may use
// the leave type on the given date, honoring the eligibility delay.
func EligibleOn(lt LeaveType, joinDate, on generic.Date) bool {
	if lt.EligibleAfter <= 0 {
		return true
	}
	return on.AfterOrEqual(joinDate.AddMonths(lt.EligibleAfter))
}

// CountDays counts the working days in [start, end] against the policy
// calendar. Weekends outside the policy's working days and listed
// holidays do not count.
func CountDays(p LeavePolicy, start, end generic.Date) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("%w: end %s before start %s", generic.ErrInvalidInput, end, start)
	}
	days := 0
	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if p.IsWorkingDay(d) {
			days++
		}
	}
	return days, nil
}

// =============================================================================
// SUMMARY STATS - dashboard cards
// =============================================================================

type HistoryStats struct {
	TotalRecords int
	Approved     int
	Rejected     int
	TotalDays    int
}

// HistoryStatsOf summarizes an already-filtered history collection.
func HistoryStatsOf(records []LeaveHistory) HistoryStats {
	byStatus := generic.CountBy(records, func(h LeaveHistory) Status { return h.Status })
	return HistoryStats{
		TotalRecords: len(records),
		Approved:     byStatus[StatusApproved],
		Rejected:     byStatus[StatusRejected],
		TotalDays:    generic.SumInt(records, func(h LeaveHistory) int { return h.Days }),
	}
}

type RequestStats struct {
	Pending  int
	Approved int
	Rejected int
	Total    int
}

func RequestStatsOf(records []LeaveRequest) RequestStats {
	byStatus := generic.CountBy(records, func(r LeaveRequest) Status { return r.Status })
	return RequestStats{
		Pending:  byStatus[StatusPending],
		Approved: byStatus[StatusApproved],
		Rejected: byStatus[StatusRejected],
		Total:    len(records),
	}
}
