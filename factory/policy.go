/*
Package factory provides JSON to Go leave-policy conversion.

PURPOSE:
  Converts JSON policy definitions into leave.LeavePolicy values. HR can
  author policies (leave types, working days, holidays, probation) as
  JSON and the factory builds validated Go structs, no code change per
  policy.

JSON SCHEMA:
  {
    "id": "policy-standard",
    "name": "Standard Employee Policy",
    "description": "Default leave policy for all regular employees",
    "leave_types": [
      {
        "name": "Annual Leave",
        "days_allowed": 21,
        "carry_forward": true,
        "max_carry_forward": 5,
        "eligible_after": 6,
        "requires_approval": true,
        "can_be_half_day": true,
        "color": "#3B82F6"
      }
    ],
    "working_days": ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday"],
    "holidays": ["2024-01-01", "2024-07-04", "2024-12-25"],
    "probation_period": 3,
    "is_default": true
  }

USAGE:
  policy, err := factory.ParsePolicy(factory.StandardPolicyJSON())

SEE ALSO:
  - leave/types.go: LeavePolicy definition
  - leave/validate.go: Per-type field validation applied during parsing
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/leave"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

type PolicyJSON struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	LeaveTypes      []LeaveTypeJSON `json:"leave_types"`
	WorkingDays     []string        `json:"working_days"`
	Holidays        []string        `json:"holidays"`
	ProbationPeriod int             `json:"probation_period"`
	IsDefault       bool            `json:"is_default"`
}

type LeaveTypeJSON struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	DaysAllowed      int    `json:"days_allowed"`
	CarryForward     bool   `json:"carry_forward"`
	MaxCarryForward  int    `json:"max_carry_forward"`
	Description      string `json:"description,omitempty"`
	Color            string `json:"color,omitempty"`
	EligibleAfter    int    `json:"eligible_after"`
	RequiresApproval bool   `json:"requires_approval"`
	CanBeHalfDay     bool   `json:"can_be_half_day"`
	Active           *bool  `json:"active,omitempty"` // default true
}

// =============================================================================
// PARSING
// =============================================================================

// ParsePolicy converts a JSON policy definition. Every nested leave type
// passes the same validation as an interactive add.
func ParsePolicy(jsonStr string) (leave.LeavePolicy, error) {
	var pj PolicyJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return leave.LeavePolicy{}, fmt.Errorf("%w: policy json: %v", generic.ErrInvalidInput, err)
	}
	if pj.Name == "" {
		return leave.LeavePolicy{}, &generic.FieldsError{Entity: "leave policy", Fields: []string{"name"}}
	}

	p := leave.LeavePolicy{
		ID:              leave.PolicyID(pj.ID),
		Name:            pj.Name,
		Description:     pj.Description,
		ProbationPeriod: pj.ProbationPeriod,
		IsDefault:       pj.IsDefault,
	}
	if p.ID == "" {
		p.ID = leave.PolicyID(generic.NewID())
	}

	for _, wd := range pj.WorkingDays {
		weekday, err := parseWeekday(wd)
		if err != nil {
			return leave.LeavePolicy{}, err
		}
		p.WorkingDays = append(p.WorkingDays, weekday)
	}
	if len(p.WorkingDays) == 0 {
		p.WorkingDays = leave.DefaultWorkingDays
	}

	for _, h := range pj.Holidays {
		date, err := generic.ParseDate(h)
		if err != nil {
			return leave.LeavePolicy{}, err
		}
		p.Holidays = append(p.Holidays, date)
	}

	for _, tj := range pj.LeaveTypes {
		lt, err := parseLeaveType(tj)
		if err != nil {
			return leave.LeavePolicy{}, err
		}
		p.LeaveTypes = append(p.LeaveTypes, lt)
	}
	return p, nil
}

func parseLeaveType(tj LeaveTypeJSON) (leave.LeaveType, error) {
	lt, err := leave.BuildLeaveType(leave.NewLeaveTypeInput{
		Name:             tj.Name,
		DaysAllowed:      tj.DaysAllowed,
		CarryForward:     tj.CarryForward,
		MaxCarryForward:  tj.MaxCarryForward,
		EligibleAfter:    tj.EligibleAfter,
		Description:      tj.Description,
		Color:            tj.Color,
		RequiresApproval: tj.RequiresApproval,
		CanBeHalfDay:     tj.CanBeHalfDay,
	})
	if err != nil {
		return leave.LeaveType{}, err
	}
	if tj.ID != "" {
		lt.ID = leave.TypeID(tj.ID)
	}
	if tj.Active != nil {
		lt.IsActive = *tj.Active
	}
	return lt, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown working day %q", generic.ErrInvalidInput, name)
}
