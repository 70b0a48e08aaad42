/*
payslip.go - Payslip PDF rendering

PURPOSE:
  Renders one payroll record as a payslip PDF, returned as bytes for the
  caller to present or attach. Nothing is written to disk.
*/
package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/warp/admin-core/hr"
)

// PayslipPDF renders the record for the employee. The employee must be
// the record's reference; mismatched inputs are the caller's bug and are
// rejected.
func PayslipPDF(r PayrollRecord, emp hr.Employee) ([]byte, error) {
	if emp.ID != r.EmployeeID {
		return nil, fmt.Errorf("payslip: record %s does not belong to employee %s", r.ID, emp.ID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", emp.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", r.Month.Label()))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic Salary: %s", r.BasicSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %s", r.Allowances))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", r.Deductions))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Salary: %s", r.NetSalary))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", r.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
