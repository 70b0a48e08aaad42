/*
aggregate.go - Roll-ups for dashboard summary cards

PURPOSE:
  Reduces a filtered collection to the summary numbers the dashboard
  cards show: counts grouped by a categorical key and sums of numeric or
  monetary fields. All functions consume the collection read-only.

EXAMPLE:
  byStatus := generic.CountBy(history, func(h LeaveHistory) Status { return h.Status })
  totalDays := generic.SumInt(history, func(h LeaveHistory) int { return h.Days })
*/
package generic

// CountBy groups records by key and counts each group.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// SumInt totals an integer field, e.g. leave days.
func SumInt[T any](items []T, field func(T) int) int {
	total := 0
	for _, item := range items {
		total += field(item)
	}
	return total
}

// SumMoney totals a monetary field, e.g. disbursed salaries.
func SumMoney[T any](items []T, field func(T) Money) Money {
	total := ZeroMoney()
	for _, item := range items {
		total = total.Add(field(item))
	}
	return total
}
