/*
Package payroll implements salary computation, bulk month generation,
manual payments, and monthly roll-ups.

KEY CONCEPTS:
  - PayrollRecord: one per (employee, month); net = basic + allowances
    - deductions, floored at zero
  - ManualPayment: ad-hoc disbursement outside the payroll run (bonus,
    reimbursement, advance), aggregated separately per month
  - MonthKey: payroll months are structured (year, month) pairs, never
    parsed from display labels

SEE ALSO:
  - calc.go: net salary and the epsilon consistency check
  - generate.go: bulk generation with the already-generated guard
  - totals.go: monthly dashboard roll-ups
*/
package payroll

import (
	"fmt"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
)

type RecordID string
type PaymentID string

// =============================================================================
// CLOSED CATEGORICAL TYPES
// =============================================================================

type PayStatus string

const (
	StatusPaid    PayStatus = "Paid"
	StatusPending PayStatus = "Pending"
)

func ParsePayStatus(s string) (PayStatus, error) {
	switch PayStatus(s) {
	case StatusPaid, StatusPending:
		return PayStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown payroll status %q", generic.ErrInvalidInput, s)
}

type PaymentType string

const (
	PaymentBonus         PaymentType = "Bonus"
	PaymentReimbursement PaymentType = "Reimbursement"
	PaymentAdvance       PaymentType = "Advance"
)

func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentBonus, PaymentReimbursement, PaymentAdvance:
		return PaymentType(s), nil
	}
	return "", fmt.Errorf("%w: unknown payment type %q", generic.ErrInvalidInput, s)
}

// =============================================================================
// ENTITIES
// =============================================================================

// PayrollRecord is the regular monthly salary record. NetSalary is a
// stored derived value; CheckNet verifies it against the recomputation.
type PayrollRecord struct {
	ID          RecordID
	EmployeeID  hr.EmployeeID
	Month       generic.MonthKey
	BasicSalary generic.Money
	Allowances  generic.Money
	Deductions  generic.Money
	NetSalary   generic.Money
	Status      PayStatus
}

// ManualPayment is independent of PayrollRecord.
type ManualPayment struct {
	ID          PaymentID
	EmployeeID  hr.EmployeeID
	Date        generic.Date
	Amount      generic.Money
	Description string
	Type        PaymentType
}
