/*
validate.go - Write gates for payroll entities

PURPOSE:
  Checks run before any payroll write reaches the store. A failed check
  writes nothing and names every violated field.
*/
package payroll

import (
	"errors"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
)

// ValidateRecord checks a payroll record before it is written: no
// negative components, and the stored net consistent with the derived
// value. An inconsistent net is InconsistentState; the caller may
// Recompute and retry instead of rejecting.
func ValidateRecord(r PayrollRecord) error {
	var fields []string
	if r.BasicSalary.IsNegative() {
		fields = append(fields, "BasicSalary")
	}
	if r.Allowances.IsNegative() {
		fields = append(fields, "Allowances")
	}
	if r.Deductions.IsNegative() {
		fields = append(fields, "Deductions")
	}
	if len(fields) > 0 {
		return &generic.FieldsError{Entity: "payroll record", Fields: fields}
	}
	return CheckNet(r)
}

// NewPaymentInput is the validated input for a manual payment.
type NewPaymentInput struct {
	EmployeeID  string  `validate:"required"`
	Date        string  `validate:"required"`
	Amount      float64 `validate:"required,gt=0"`
	Description string  `validate:"required"`
	Type        string  `validate:"required"`
}

// EmployeeResolver answers whether an employee reference exists.
// Implemented by the store.
type EmployeeResolver interface {
	EmployeeExists(id hr.EmployeeID) bool
}

// BuildPayment validates the input, resolves the employee reference,
// and constructs the payment.
func BuildPayment(in NewPaymentInput, employees EmployeeResolver) (ManualPayment, error) {
	if err := generic.CheckStruct("manual payment", in); err != nil {
		return ManualPayment{}, err
	}
	date, err := generic.ParseDate(in.Date)
	if err != nil {
		return ManualPayment{}, &generic.FieldsError{Entity: "manual payment", Fields: []string{"Date"}}
	}
	paymentType, err := ParsePaymentType(in.Type)
	if err != nil {
		return ManualPayment{}, err
	}
	id := hr.EmployeeID(in.EmployeeID)
	if employees == nil || !employees.EmployeeExists(id) {
		return ManualPayment{}, &generic.NotFoundError{Entity: "employee", ID: in.EmployeeID}
	}
	return ManualPayment{
		ID:          PaymentID(generic.NewID()),
		EmployeeID:  id,
		Date:        date,
		Amount:      generic.NewMoney(in.Amount),
		Description: in.Description,
		Type:        paymentType,
	}, nil
}

// IsInconsistent reports whether err is the drifted-net condition callers
// may auto-correct.
func IsInconsistent(err error) bool {
	return errors.Is(err, generic.ErrInconsistentState)
}
