/*
validate.go - Write gates for leave entities

PURPOSE:
  Every mutation into the store passes one of these checks first. A
  failed check reports every violated field and nothing is written.

DECISIONS:
  - MaxCarryForward is only meaningful when CarryForward is set; a
    non-zero cap on a non-carrying type is rejected rather than ignored.
  - At most one policy may be the default. A second default is rejected
    at write time with InvalidState.
*/
package leave

import (
	"errors"
	"fmt"
	"time"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
)

// NewLeaveTypeInput is the validated input for adding a leave type.
type NewLeaveTypeInput struct {
	Name             string `validate:"required"`
	DaysAllowed      int    `validate:"gte=0"`
	CarryForward     bool
	MaxCarryForward  int `validate:"gte=0"`
	EligibleAfter    int `validate:"gte=0"`
	Description      string
	Color            string
	RequiresApproval bool
	CanBeHalfDay     bool
}

// ValidateLeaveType checks field presence and numeric consistency,
// collecting every violation.
func ValidateLeaveType(in NewLeaveTypeInput) error {
	var fields []string
	if err := generic.CheckStruct("leave type", in); err != nil {
		var fe *generic.FieldsError
		if !errors.As(err, &fe) {
			return err
		}
		fields = append(fields, fe.Fields...)
	}
	if !in.CarryForward && in.MaxCarryForward > 0 {
		fields = append(fields, "MaxCarryForward")
	}
	if len(fields) > 0 {
		return &generic.FieldsError{Entity: "leave type", Fields: fields}
	}
	return nil
}

// BuildLeaveType constructs the entity from validated input.
func BuildLeaveType(in NewLeaveTypeInput) (LeaveType, error) {
	if err := ValidateLeaveType(in); err != nil {
		return LeaveType{}, err
	}
	return LeaveType{
		ID:               TypeID(generic.NewID()),
		Name:             in.Name,
		DaysAllowed:      in.DaysAllowed,
		CarryForward:     in.CarryForward,
		MaxCarryForward:  in.MaxCarryForward,
		Description:      in.Description,
		Color:            in.Color,
		EligibleAfter:    in.EligibleAfter,
		RequiresApproval: in.RequiresApproval,
		CanBeHalfDay:     in.CanBeHalfDay,
		IsActive:         true,
	}, nil
}

// ValidatePolicyWrite gates a policy insert or update against the
// existing set: at most one default policy may exist.
func ValidatePolicyWrite(existing []LeavePolicy, p LeavePolicy) error {
	if p.Name == "" {
		return &generic.FieldsError{Entity: "leave policy", Fields: []string{"Name"}}
	}
	if p.IsDefault {
		for _, other := range existing {
			if other.ID != p.ID && other.IsDefault {
				return fmt.Errorf("%w: policy %q is already the default", generic.ErrInvalidState, other.Name)
			}
		}
	}
	return nil
}

// =============================================================================
// NEW REQUEST INPUT
// =============================================================================

// NewRequest is the validated input for submitting a leave request.
// Requests always start pending.
type NewRequest struct {
	EmployeeID   string `validate:"required"`
	EmployeeName string `validate:"required"`
	Department   string `validate:"required"`
	LeaveType    string `validate:"required"`
	StartDate    string `validate:"required"`
	EndDate      string `validate:"required"`
	Days         int    `validate:"gt=0"`
	Reason       string `validate:"required"`
	Priority     string `validate:"required"`
}

// Build validates the input and constructs a pending request.
func (in NewRequest) Build() (LeaveRequest, error) {
	if err := generic.CheckStruct("leave request", in); err != nil {
		return LeaveRequest{}, err
	}
	start, err := generic.ParseDate(in.StartDate)
	if err != nil {
		return LeaveRequest{}, &generic.FieldsError{Entity: "leave request", Fields: []string{"StartDate"}}
	}
	end, err := generic.ParseDate(in.EndDate)
	if err != nil {
		return LeaveRequest{}, &generic.FieldsError{Entity: "leave request", Fields: []string{"EndDate"}}
	}
	if end.Before(start) {
		return LeaveRequest{}, fmt.Errorf("%w: end date before start date", generic.ErrInvalidInput)
	}
	priority, err := ParsePriority(in.Priority)
	if err != nil {
		return LeaveRequest{}, err
	}
	return LeaveRequest{
		ID:            RequestID(generic.NewID()),
		EmployeeID:    hr.EmployeeID(in.EmployeeID),
		EmployeeName:  in.EmployeeName,
		Department:    in.Department,
		LeaveType:     in.LeaveType,
		StartDate:     start,
		EndDate:       end,
		Days:          in.Days,
		Reason:        in.Reason,
		Status:        StatusPending,
		SubmittedDate: generic.Today(),
		Priority:      priority,
	}, nil
}

// DefaultWorkingDays is the Monday-Friday calendar most policies use.
var DefaultWorkingDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}
