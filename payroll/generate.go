/*
generate.go - Bulk payroll generation and the payroll service

PURPOSE:
  Generating a month produces one record per employee from the
  employee's salary baseline: allowances at 20% of basic, deductions at
  10%, net derived. One record per (employee, month) is the invariant;
  nothing enforces it structurally, so generation is gated by an
  explicit existence check. A month with any existing record fails with
  ErrAlreadyGenerated and writes nothing. The batch insert is atomic.

SEE ALSO:
  - calc.go: NetSalary
  - store/memory.go: the transactional batch write
*/
package payroll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
)

var (
	allowanceRate = decimal.NewFromFloat(0.2)
	deductionRate = decimal.NewFromFloat(0.1)
)

// GenerateRecord builds the month's record for one employee from the
// salary baseline.
func GenerateRecord(emp hr.Employee, month generic.MonthKey) PayrollRecord {
	basic := emp.BasicSalary
	allowances := generic.Money{Value: basic.Value.Mul(allowanceRate)}
	deductions := generic.Money{Value: basic.Value.Mul(deductionRate)}
	return PayrollRecord{
		ID:          RecordID(fmt.Sprintf("payroll-%s-%d-%02d", emp.ID, month.Year, int(month.Month))),
		EmployeeID:  emp.ID,
		Month:       month,
		BasicSalary: basic,
		Allowances:  allowances,
		Deductions:  deductions,
		NetSalary:   NetSalary(basic, allowances, deductions),
		Status:      StatusPaid,
	}
}

// =============================================================================
// STORE INTERFACE - implemented by store.Memory
// =============================================================================

type Store interface {
	ListRecords(ctx context.Context) ([]PayrollRecord, error)
	ListPayments(ctx context.Context) ([]ManualPayment, error)
	ListEmployees(ctx context.Context) ([]hr.Employee, error)

	// PutRecords inserts the batch atomically: all or none.
	PutRecords(ctx context.Context, records []PayrollRecord) error

	// SaveRecord inserts or replaces a single record.
	SaveRecord(ctx context.Context, r PayrollRecord) error

	PutPayment(ctx context.Context, p ManualPayment) error
	DeletePayment(ctx context.Context, id PaymentID) error
}

// =============================================================================
// SERVICE
// =============================================================================

type Service struct {
	Store Store
	Log   *logrus.Logger
}

func NewService(store Store, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{Store: store, Log: log}
}

// GenerateMonth creates records for every employee for the month. When
// the month already has any record it fails with ErrAlreadyGenerated
// and creates nothing.
func (s *Service) GenerateMonth(ctx context.Context, month generic.MonthKey) ([]PayrollRecord, error) {
	existing, err := s.Store.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.Month == month {
			return nil, fmt.Errorf("%w for %s", generic.ErrAlreadyGenerated, month)
		}
	}

	employees, err := s.Store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]PayrollRecord, 0, len(employees))
	for _, emp := range employees {
		records = append(records, GenerateRecord(emp, month))
	}
	if err := s.Store.PutRecords(ctx, records); err != nil {
		return nil, err
	}

	s.Log.WithFields(logrus.Fields{
		"month":     month.Label(),
		"employees": len(records),
	}).Info("payroll generated")
	return records, nil
}

// SaveRecord validates and writes a single record. A drifted net is
// auto-corrected by recomputation, the hosting application's default.
func (s *Service) SaveRecord(ctx context.Context, r PayrollRecord) (PayrollRecord, error) {
	if err := ValidateRecord(r); err != nil {
		if !IsInconsistent(err) {
			return PayrollRecord{}, err
		}
		s.Log.WithFields(logrus.Fields{
			"record": r.ID,
			"stored": r.NetSalary.String(),
		}).Warn("stored net salary drifted, recomputing")
		r = Recompute(r)
	}
	if err := s.Store.SaveRecord(ctx, r); err != nil {
		return PayrollRecord{}, err
	}
	return r, nil
}

// AddPayment validates and files a manual payment.
func (s *Service) AddPayment(ctx context.Context, in NewPaymentInput, employees EmployeeResolver) (ManualPayment, error) {
	p, err := BuildPayment(in, employees)
	if err != nil {
		return ManualPayment{}, err
	}
	if err := s.Store.PutPayment(ctx, p); err != nil {
		return ManualPayment{}, err
	}
	s.Log.WithFields(logrus.Fields{
		"payment":  p.ID,
		"employee": p.EmployeeID,
		"type":     p.Type,
		"amount":   p.Amount.String(),
	}).Info("manual payment recorded")
	return p, nil
}

// RemovePayment deletes a manual payment.
func (s *Service) RemovePayment(ctx context.Context, id PaymentID) error {
	return s.Store.DeletePayment(ctx, id)
}
