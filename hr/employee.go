/*
Package hr holds the employee reference entity and onboarding validation.

Employees are created by HR onboarding and are immutable references for
the leave and payroll joins; nothing in this module mutates one after
creation.
*/
package hr

import (
	"github.com/warp/admin-core/generic"
)

// EmployeeID is the HR-assigned identifier, e.g. "EMP001".
type EmployeeID string

// Employee is the canonical employee reference used by joins.
type Employee struct {
	ID         EmployeeID
	Name       string
	Department string
	Position   string

	// Onboarding details
	PersonalEmail string
	Phone         string
	OfficeEmail   string
	NationalID    string
	Nationality   string
	MaritalStatus string
	DateOfBirth   generic.Date
	Gender        string

	// Compensation baseline used by payroll generation.
	BasicSalary generic.Money

	// Optional details
	Address          string
	EmergencyContact string
	JoinDate         generic.Date
}

// Onboarding is the validated input for creating an employee. The listed
// fields are mandatory; everything else on Employee is optional.
type Onboarding struct {
	ID            string `validate:"required"`
	Name          string `validate:"required"`
	PersonalEmail string `validate:"required,email"`
	Phone         string `validate:"required"`
	OfficeEmail   string `validate:"required,email"`
	NationalID    string `validate:"required"`
	Nationality   string `validate:"required"`
	MaritalStatus string `validate:"required"`
	DateOfBirth   string `validate:"required"`
	Gender        string `validate:"required"`

	Department  string
	Position    string
	BasicSalary float64
	Address     string
	JoinDate    string
}

// ValidateOnboarding checks every mandatory field and reports all absent
// fields at once, not just the first.
func ValidateOnboarding(in Onboarding) error {
	if err := generic.CheckStruct("employee", in); err != nil {
		return err
	}
	if _, err := generic.ParseDate(in.DateOfBirth); err != nil {
		return &generic.FieldsError{Entity: "employee", Fields: []string{"DateOfBirth"}}
	}
	return nil
}

// NewEmployee builds the employee record from validated onboarding input.
func NewEmployee(in Onboarding) (Employee, error) {
	if err := ValidateOnboarding(in); err != nil {
		return Employee{}, err
	}
	dob, _ := generic.ParseDate(in.DateOfBirth)
	emp := Employee{
		ID:            EmployeeID(in.ID),
		Name:          in.Name,
		Department:    in.Department,
		Position:      in.Position,
		PersonalEmail: in.PersonalEmail,
		Phone:         in.Phone,
		OfficeEmail:   in.OfficeEmail,
		NationalID:    in.NationalID,
		Nationality:   in.Nationality,
		MaritalStatus: in.MaritalStatus,
		DateOfBirth:   dob,
		Gender:        in.Gender,
		BasicSalary:   generic.NewMoney(in.BasicSalary),
		Address:       in.Address,
	}
	if in.JoinDate != "" {
		jd, err := generic.ParseDate(in.JoinDate)
		if err != nil {
			return Employee{}, &generic.FieldsError{Entity: "employee", Fields: []string{"JoinDate"}}
		}
		emp.JoinDate = jd
	}
	return emp, nil
}
