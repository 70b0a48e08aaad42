/*
Package leave implements leave-request lifecycle, policy rules, and the
derived views the dashboard renders.

KEY CONCEPTS:
  - LeaveRequest: lifecycle entity, pending until decided exactly once
  - LeaveHistory: terminal-state record with approved date + derived year
  - LeaveType: per-type allowances, carry-forward, eligibility delay
  - LeavePolicy: ordered leave types + working-day calendar + holidays

  Status and Priority are closed types constructed through parse
  functions; an unknown string is rejected at the boundary instead of
  surfacing at render time.

SEE ALSO:
  - lifecycle.go: pending -> approved | rejected, both terminal
  - derive.go: year, carry-forward cap, eligibility, day counting
  - validate.go: write gates for leave types and policies
*/
package leave

import (
	"fmt"
	"time"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
)

type RequestID string
type TypeID string
type PolicyID string

// =============================================================================
// CLOSED CATEGORICAL TYPES
// =============================================================================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus rejects unknown values at construction.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown leave status %q", generic.ErrInvalidInput, s)
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("%w: unknown priority %q", generic.ErrInvalidInput, s)
}

// =============================================================================
// ENTITIES
// =============================================================================

// LeaveRequest is created pending and decided exactly once.
type LeaveRequest struct {
	ID            RequestID
	EmployeeID    hr.EmployeeID
	EmployeeName  string
	Department    string
	LeaveType     string
	StartDate     generic.Date
	EndDate       generic.Date
	Days          int
	Reason        string
	Status        Status
	SubmittedDate generic.Date
	ApprovedBy    string // set at decision time, empty while pending
	Priority      Priority
}

// LeaveHistory is a decided request plus the decision date and the
// calendar year derived from the start date.
type LeaveHistory struct {
	ID            RequestID
	EmployeeID    hr.EmployeeID
	EmployeeName  string
	Department    string
	LeaveType     string
	StartDate     generic.Date
	EndDate       generic.Date
	Days          int
	Reason        string
	Status        Status
	SubmittedDate generic.Date
	ApprovedBy    string
	ApprovedDate  generic.Date
	Year          int
}

// LeaveType defines one category of leave within a policy.
type LeaveType struct {
	ID               TypeID
	Name             string
	DaysAllowed      int
	CarryForward     bool
	MaxCarryForward  int // meaningful only when CarryForward
	Description      string
	Color            string
	EligibleAfter    int // months of employment before the type may be used
	RequiresApproval bool
	CanBeHalfDay     bool
	IsActive         bool
}

// LeavePolicy groups leave types with a working-day calendar.
// Leave types keep their insertion order for display; lookup is by ID.
type LeavePolicy struct {
	ID              PolicyID
	Name            string
	Description     string
	LeaveTypes      []LeaveType
	WorkingDays     []time.Weekday
	Holidays        []generic.Date
	ProbationPeriod int // months
	IsDefault       bool
}

// TypeByID looks a leave type up inside the policy.
func (p LeavePolicy) TypeByID(id TypeID) (LeaveType, error) {
	for _, lt := range p.LeaveTypes {
		if lt.ID == id {
			return lt, nil
		}
	}
	return LeaveType{}, &generic.NotFoundError{Entity: "leave type", ID: string(id)}
}

// IsWorkingDay checks the policy calendar: listed weekday and not a holiday.
func (p LeavePolicy) IsWorkingDay(d generic.Date) bool {
	listed := false
	for _, wd := range p.WorkingDays {
		if d.Weekday() == wd {
			listed = true
			break
		}
	}
	if !listed {
		return false
	}
	for _, h := range p.Holidays {
		if d.Equal(h) {
			return false
		}
	}
	return true
}
