/*
Package generic provides the domain-agnostic core of the administration engine.

PURPOSE:
  This package contains the types and algorithms shared by every domain
  package (hr, clients, leave, payroll): money arithmetic, calendar dates,
  structured month keys, filtering/sorting pipelines, and aggregation.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A monetary amount backed by decimal.Decimal
  - Date: A day-granularity calendar date (used for all entity dates)
  - MonthKey: A structured (year, month) pair identifying a payroll month
  - NewID: Identifier generation for store-assigned IDs

DESIGN PRINCIPLES:
  1. Precision: Money uses decimal.Decimal to avoid floating-point errors
  2. Structured keys: MonthKey replaces free-form "Month Year" labels so
     month matching never depends on locale-sensitive string parsing
  3. Immutability: every operation returns a new value

USAGE:
  net := generic.NewMoney(50000).Add(generic.NewMoney(10000))
  month := generic.MonthKey{Year: 2024, Month: time.October}

SEE ALSO:
  - filter.go: Generic filtering and stable sorting
  - aggregate.go: Count and sum roll-ups
  - errors.go: Error kinds shared by all domain packages
*/
package generic

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Monetary amount with decimal precision
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func ZeroMoney() Money {
	return Money{Value: decimal.Zero}
}

func (m Money) Add(o Money) Money        { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money        { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Neg() Money               { return Money{Value: m.Value.Neg()} }
func (m Money) IsNegative() bool         { return m.Value.IsNegative() }
func (m Money) IsZero() bool             { return m.Value.IsZero() }
func (m Money) IsPositive() bool         { return m.Value.IsPositive() }
func (m Money) LessThan(o Money) bool    { return m.Value.LessThan(o.Value) }
func (m Money) GreaterThan(o Money) bool { return m.Value.GreaterThan(o.Value) }
func (m Money) Equal(o Money) bool       { return m.Value.Equal(o.Value) }

// Floor returns the larger of m and zero.
func (m Money) Floor() Money {
	if m.IsNegative() {
		return ZeroMoney()
	}
	return m
}

// WithinEpsilon reports whether m and o differ by no more than eps.
// Used by consistency checks on stored derived values.
func (m Money) WithinEpsilon(o Money, eps Money) bool {
	diff := m.Value.Sub(o.Value).Abs()
	return diff.LessThanOrEqual(eps.Value)
}

func (m Money) String() string {
	return m.Value.StringFixed(2)
}

// Epsilon is the tolerance for comparing stored vs recomputed amounts.
var Epsilon = NewMoney(0.01)

// =============================================================================
// DATE - Day-granularity calendar date
// =============================================================================

type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, s)
	}
	return Date{Time: t}, nil
}

// MustDate is for fixtures and tests where the literal is known valid.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(o Date) bool { return d.normalize().Before(o.normalize()) }
func (d Date) Equal(o Date) bool  { return d.normalize().Equal(o.normalize()) }
func (d Date) After(o Date) bool  { return d.normalize().After(o.normalize()) }
func (d Date) BeforeOrEqual(o Date) bool { return d.Before(o) || d.Equal(o) }
func (d Date) AfterOrEqual(o Date) bool  { return d.After(o) || d.Equal(o) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{Time: d.Time.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{Time: d.Time.AddDate(0, n, 0)} }
func (d Date) AddYears(n int) Date  { return Date{Time: d.Time.AddDate(n, 0, 0)} }

// Properties
func (d Date) Year() int             { return d.Time.Year() }
func (d Date) Month() time.Month     { return d.Time.Month() }
func (d Date) Day() int              { return d.Time.Day() }
func (d Date) Weekday() time.Weekday { return d.Time.Weekday() }
func (d Date) IsZero() bool          { return d.Time.IsZero() }

func (d Date) String() string {
	return d.Time.Format("2006-01-02")
}

func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// =============================================================================
// MONTH KEY - Structured payroll month (no locale-sensitive label parsing)
// =============================================================================

// MonthKey identifies a calendar month. Payroll records are keyed by
// MonthKey, never by a human-readable label, so equality is exact.
type MonthKey struct {
	Year  int
	Month time.Month
}

func MonthOf(d Date) MonthKey {
	return MonthKey{Year: d.Year(), Month: d.Month()}
}

func CurrentMonth() MonthKey {
	return MonthOf(Today())
}

// Label renders the display form, e.g. "October 2024".
func (mk MonthKey) Label() string {
	return time.Date(mk.Year, mk.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

func (mk MonthKey) String() string { return mk.Label() }

// Contains reports whether the date falls inside the month.
func (mk MonthKey) Contains(d Date) bool {
	return d.Year() == mk.Year && d.Month() == mk.Month
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

// NewID returns a fresh identifier for store-assigned entities.
func NewID() string {
	return uuid.NewString()
}
