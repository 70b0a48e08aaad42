package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
	"github.com/warp/admin-core/payroll"
)

func TestPayslipPDF_RendersDocumentBytes(t *testing.T) {
	emp := hr.Employee{ID: "EMP001", Name: "John Smith", Department: "Engineering",
		BasicSalary: generic.NewMoneyFromInt(50000)}
	r := payroll.GenerateRecord(emp, generic.MonthKey{Year: 2024, Month: time.October})

	out, err := payroll.PayslipPDF(r, emp)

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPayslipPDF_RejectsMismatchedEmployee(t *testing.T) {
	emp := hr.Employee{ID: "EMP001", Name: "John Smith", BasicSalary: generic.NewMoneyFromInt(50000)}
	other := hr.Employee{ID: "EMP002", Name: "Sarah Johnson"}
	r := payroll.GenerateRecord(emp, generic.MonthKey{Year: 2024, Month: time.October})

	_, err := payroll.PayslipPDF(r, other)
	assert.Error(t, err)
}
