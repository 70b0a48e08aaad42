/*
filter.go - Generic filtering and stable sorting pipeline

PURPOSE:
  Every list view in the hosting application narrows and orders an entity
  collection the same way: a free-text search across configured fields, a
  set of exact-match categorical filters with an 'all' bypass, and a
  sort key with a direction. This file implements that pipeline once,
  generically, so domain packages only declare field selectors.

CONTRACT:
  - The input collection is never mutated; Apply returns a new slice.
  - Free-text search is a case-insensitive substring match; a record
    matches when ANY configured field contains the query; the empty
    query matches everything.
  - Categorical filters treat the 'all' sentinel as a bypass.
  - Sorting is stable: records with equal keys keep their relative input
    order. This is what makes "latest first" deterministic when two
    records share a submitted date.
  - Date-valued keys compare as dates, never as strings.

EXAMPLE:
  pred := generic.And(
      generic.TextSearch(query,
          func(h LeaveHistory) string { return h.EmployeeName },
          func(h LeaveHistory) string { return h.Department },
      ),
      generic.Categorical(status, func(h LeaveHistory) string { return string(h.Status) }),
  )
  out := generic.Apply(records, pred, generic.ByDate(func(h LeaveHistory) generic.Date {
      return h.StartDate
  }), generic.Descending)
*/
package generic

import (
	"sort"
	"strings"
)

// FilterAll is the categorical sentinel that bypasses a dimension.
const FilterAll = "all"

// Direction of a sort.
type Direction bool

const (
	Ascending  Direction = false
	Descending Direction = true
)

// Predicate reports whether a record passes a filter dimension.
type Predicate[T any] func(T) bool

// =============================================================================
// PREDICATE BUILDERS
// =============================================================================

// TextSearch matches records where any field contains the query,
// case-insensitively. An empty query matches everything.
func TextSearch[T any](query string, fields ...func(T) string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if query == "" {
			return true
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), query) {
				return true
			}
		}
		return false
	}
}

// Categorical matches records whose field equals the selected value.
// The FilterAll sentinel bypasses the dimension.
func Categorical[T any](selected string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		return selected == FilterAll || field(item) == selected
	}
}

// YearIs matches records whose year field equals the selected year.
// Zero bypasses the dimension.
func YearIs[T any](year int, field func(T) int) Predicate[T] {
	return func(item T) bool {
		return year == 0 || field(item) == year
	}
}

// DateRange matches records whose date falls in [from, to], inclusive.
// Zero bounds are open.
func DateRange[T any](from, to Date, field func(T) Date) Predicate[T] {
	return func(item T) bool {
		d := field(item)
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && d.After(to) {
			return false
		}
		return true
	}
}

// And combines predicates; a record must pass every dimension.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// =============================================================================
// COMPARATORS - Less functions over a selected key
// =============================================================================

type Less[T any] func(a, b T) bool

func ByString[T any](field func(T) string) Less[T] {
	return func(a, b T) bool {
		return strings.ToLower(field(a)) < strings.ToLower(field(b))
	}
}

func ByInt[T any](field func(T) int) Less[T] {
	return func(a, b T) bool { return field(a) < field(b) }
}

func ByMoney[T any](field func(T) Money) Less[T] {
	return func(a, b T) bool { return field(a).LessThan(field(b)) }
}

// ByDate compares date-typed keys as dates. String comparison of dates is
// a lexicographic trap ("2024-9-1" vs "2024-10-1") and is never used here.
func ByDate[T any](field func(T) Date) Less[T] {
	return func(a, b T) bool { return field(a).Before(field(b)) }
}

// =============================================================================
// PIPELINE
// =============================================================================

// Filter returns the records passing pred, in input order.
// The input slice is never mutated.
func Filter[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Sort returns a stably sorted copy. Ties keep their input order for
// either direction.
func Sort[T any](items []T, less Less[T], dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	if less == nil {
		return out
	}
	cmp := less
	if dir == Descending {
		cmp = func(a, b T) bool { return less(b, a) }
	}
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) })
	return out
}

// Apply runs the full pipeline: filter, then stable sort.
func Apply[T any](items []T, pred Predicate[T], less Less[T], dir Direction) []T {
	return Sort(Filter(items, pred), less, dir)
}

// Distinct returns the unique values of a field, in first-seen order.
// Used to populate filter dropdowns (departments, years).
func Distinct[T any, K comparable](items []T, field func(T) K) []K {
	seen := make(map[K]bool)
	var out []K
	for _, item := range items {
		k := field(item)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
