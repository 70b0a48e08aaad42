/*
calc.go - Net salary computation and consistency checking

PURPOSE:
  NetSalary is the single formula behind every payroll figure:

      net = max(0, basic + allowances - deductions)

  A stored record carries its net as a derived value. CheckNet reports
  when the stored figure drifts from the recomputation by more than
  Epsilon (0.01) without modifying the record; the caller decides
  whether to block the write or auto-correct with Recompute, which is
  the hosting application's default.
*/
package payroll

import (
	"github.com/warp/admin-core/generic"
)

// NetSalary computes basic + allowances - deductions, floored at zero.
func NetSalary(basic, allowances, deductions generic.Money) generic.Money {
	return basic.Add(allowances).Sub(deductions).Floor()
}

// CheckNet verifies the stored net against the recomputed value within
// Epsilon. A mismatch returns an InconsistencyError carrying both
// figures; the record is not modified.
func CheckNet(r PayrollRecord) error {
	want := NetSalary(r.BasicSalary, r.Allowances, r.Deductions)
	if !r.NetSalary.WithinEpsilon(want, generic.Epsilon) {
		return &generic.InconsistencyError{
			What:       "payroll record " + string(r.ID),
			Stored:     r.NetSalary,
			Recomputed: want,
		}
	}
	return nil
}

// Recompute returns a copy of the record with the net re-derived. This
// is the auto-correct path for callers that tolerate drifted input.
func Recompute(r PayrollRecord) PayrollRecord {
	r.NetSalary = NetSalary(r.BasicSalary, r.Allowances, r.Deductions)
	return r
}
