/*
totals.go - Monthly roll-ups for the payroll dashboard

PURPOSE:
  Reduces the two payment collections to the month's summary: payroll
  records match by structured MonthKey equality; manual payments match
  by the calendar year and month of their date. No label parsing.
*/
package payroll

import (
	"github.com/warp/admin-core/generic"
)

// MonthlyTotals is the dashboard summary for one month.
type MonthlyTotals struct {
	TotalPaid      generic.Money // net salaries disbursed via payroll
	ManualTotal    generic.Money // ad-hoc disbursements
	EmployeesPaid  int
	TotalDisbursed generic.Money // TotalPaid + ManualTotal
}

// TotalsFor filters both collections to the month and sums them.
func TotalsFor(records []PayrollRecord, payments []ManualPayment, month generic.MonthKey) MonthlyTotals {
	monthRecords := generic.Filter(records, func(r PayrollRecord) bool {
		return r.Month == month
	})
	monthPayments := FilterPaymentsByMonth(payments, month)

	totalPaid := generic.SumMoney(monthRecords, func(r PayrollRecord) generic.Money { return r.NetSalary })
	manualTotal := generic.SumMoney(monthPayments, func(p ManualPayment) generic.Money { return p.Amount })

	return MonthlyTotals{
		TotalPaid:      totalPaid,
		ManualTotal:    manualTotal,
		EmployeesPaid:  len(monthRecords),
		TotalDisbursed: totalPaid.Add(manualTotal),
	}
}

// FilterPaymentsByMonth keeps payments whose date falls in the month,
// in input order.
func FilterPaymentsByMonth(payments []ManualPayment, month generic.MonthKey) []ManualPayment {
	return generic.Filter(payments, func(p ManualPayment) bool {
		return month.Contains(p.Date)
	})
}

// RecordsForMonth keeps the month's payroll records, optionally narrowed
// by an employee-name search resolved through the name lookup.
func RecordsForMonth(records []PayrollRecord, month generic.MonthKey, search string, nameOf func(PayrollRecord) string) []PayrollRecord {
	pred := generic.And(
		func(r PayrollRecord) bool { return r.Month == month },
		generic.TextSearch(search, nameOf),
	)
	return generic.Filter(records, pred)
}
