/*
filter.go - Filter combos for the request and history views

PURPOSE:
  Declares the searchable fields, categorical dimensions, and sort keys
  of the two leave list views on top of the generic pipeline. Filtering
  always returns a subset of the input in a new slice; the 'all'
  sentinel (and year 0) bypasses a dimension; ordering is stable.
*/
package leave

import (
	"github.com/warp/admin-core/generic"
)

// SortKey selects the history sort column.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByEmployee SortKey = "employee"
	SortByDays     SortKey = "days"
)

// RequestFilter narrows the pending-requests view.
type RequestFilter struct {
	Search string
	Status string // "all" or a Status value
}

// FilterRequests applies the combo, newest submissions first.
func FilterRequests(requests []LeaveRequest, f RequestFilter) []LeaveRequest {
	pred := generic.And(
		generic.TextSearch(f.Search,
			func(r LeaveRequest) string { return r.EmployeeName },
			func(r LeaveRequest) string { return string(r.EmployeeID) },
			func(r LeaveRequest) string { return r.Department },
		),
		generic.Categorical(orAll(f.Status), func(r LeaveRequest) string { return string(r.Status) }),
	)
	less := generic.ByDate(func(r LeaveRequest) generic.Date { return r.SubmittedDate })
	return generic.Apply(requests, pred, less, generic.Descending)
}

// HistoryFilter narrows the leave-history view.
type HistoryFilter struct {
	Search     string
	Year       int    // 0 = all
	Status     string // "all" or a Status value
	Department string // "all" or a department
	SortBy     SortKey
	Direction  generic.Direction
}

// FilterHistory applies the combo. The default sort key is start date;
// the history view passes Descending for its latest-first ordering.
func FilterHistory(history []LeaveHistory, f HistoryFilter) []LeaveHistory {
	pred := generic.And(
		generic.TextSearch(f.Search,
			func(h LeaveHistory) string { return h.EmployeeName },
			func(h LeaveHistory) string { return string(h.EmployeeID) },
			func(h LeaveHistory) string { return h.Department },
			func(h LeaveHistory) string { return h.LeaveType },
		),
		generic.YearIs(f.Year, func(h LeaveHistory) int { return h.Year }),
		generic.Categorical(orAll(f.Status), func(h LeaveHistory) string { return string(h.Status) }),
		generic.Categorical(orAll(f.Department), func(h LeaveHistory) string { return h.Department }),
	)

	var less generic.Less[LeaveHistory]
	switch f.SortBy {
	case SortByEmployee:
		less = generic.ByString(func(h LeaveHistory) string { return h.EmployeeName })
	case SortByDays:
		less = generic.ByInt(func(h LeaveHistory) int { return h.Days })
	default:
		less = generic.ByDate(func(h LeaveHistory) generic.Date { return h.StartDate })
	}
	return generic.Apply(history, pred, less, f.Direction)
}

// Departments enumerates the departments present, in first-seen order.
func Departments(history []LeaveHistory) []string {
	return generic.Distinct(history, func(h LeaveHistory) string { return h.Department })
}

// Years enumerates the years present, newest first.
func Years(history []LeaveHistory) []int {
	years := generic.Distinct(history, func(h LeaveHistory) int { return h.Year })
	return generic.Sort(years, func(a, b int) bool { return a < b }, generic.Descending)
}

func orAll(s string) string {
	if s == "" {
		return generic.FilterAll
	}
	return s
}
