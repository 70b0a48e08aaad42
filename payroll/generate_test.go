package payroll_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
	"github.com/warp/admin-core/payroll"
	"github.com/warp/admin-core/store"
)

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newPayrollService(t *testing.T, employees ...hr.Employee) (*payroll.Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(quietLog())
	for _, emp := range employees {
		require.NoError(t, mem.PutEmployee(context.Background(), emp))
	}
	return payroll.NewService(mem, quietLog()), mem
}

func staff() []hr.Employee {
	return []hr.Employee{
		{ID: "EMP001", Name: "John Smith", Department: "Engineering", BasicSalary: generic.NewMoneyFromInt(50000)},
		{ID: "EMP002", Name: "Sarah Johnson", Department: "Marketing", BasicSalary: generic.NewMoneyFromInt(42000)},
		{ID: "EMP003", Name: "Mike Wilson", Department: "Sales", BasicSalary: generic.NewMoneyFromInt(38000)},
	}
}

func TestGenerateRecord_DerivesComponentsFromBasic(t *testing.T) {
	emp := hr.Employee{ID: "EMP001", Name: "John Smith", BasicSalary: generic.NewMoneyFromInt(50000)}
	month := generic.MonthKey{Year: 2024, Month: time.October}

	r := payroll.GenerateRecord(emp, month)

	assert.Equal(t, payroll.RecordID("payroll-EMP001-2024-10"), r.ID)
	assert.True(t, r.Allowances.Equal(generic.NewMoneyFromInt(10000)))
	assert.True(t, r.Deductions.Equal(generic.NewMoneyFromInt(5000)))
	assert.True(t, r.NetSalary.Equal(generic.NewMoneyFromInt(55000)))
	assert.Equal(t, payroll.StatusPaid, r.Status)
	assert.Equal(t, month, r.Month)
}

func TestGenerateMonth_OneRecordPerEmployee(t *testing.T) {
	svc, mem := newPayrollService(t, staff()...)
	month := generic.MonthKey{Year: 2024, Month: time.October}

	records, err := svc.GenerateMonth(context.Background(), month)
	require.NoError(t, err)
	require.Len(t, records, 3)

	stored, err := mem.ListRecords(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 3)
	for _, r := range stored {
		assert.Equal(t, month, r.Month)
		assert.NoError(t, payroll.CheckNet(r))
	}
}

func TestGenerateMonth_SecondRunFailsAndWritesNothing(t *testing.T) {
	svc, mem := newPayrollService(t, staff()...)
	month := generic.MonthKey{Year: 2024, Month: time.October}

	_, err := svc.GenerateMonth(context.Background(), month)
	require.NoError(t, err)

	_, err = svc.GenerateMonth(context.Background(), month)
	assert.ErrorIs(t, err, generic.ErrAlreadyGenerated)
	assert.ErrorIs(t, err, generic.ErrInvalidState)

	stored, err := mem.ListRecords(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestGenerateMonth_OtherMonthsAreIndependent(t *testing.T) {
	svc, mem := newPayrollService(t, staff()...)

	_, err := svc.GenerateMonth(context.Background(), generic.MonthKey{Year: 2024, Month: time.September})
	require.NoError(t, err)
	_, err = svc.GenerateMonth(context.Background(), generic.MonthKey{Year: 2024, Month: time.October})
	require.NoError(t, err)

	stored, err := mem.ListRecords(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 6)
}

func TestSaveRecord_AutoCorrectsDriftedNet(t *testing.T) {
	svc, mem := newPayrollService(t, staff()...)

	drifted := payroll.PayrollRecord{
		ID:          "payroll-EMP001-2024-10",
		EmployeeID:  "EMP001",
		Month:       generic.MonthKey{Year: 2024, Month: time.October},
		BasicSalary: generic.NewMoneyFromInt(50000),
		Allowances:  generic.NewMoneyFromInt(10000),
		Deductions:  generic.NewMoneyFromInt(5000),
		NetSalary:   generic.NewMoneyFromInt(60000),
		Status:      payroll.StatusPaid,
	}

	saved, err := svc.SaveRecord(context.Background(), drifted)
	require.NoError(t, err)
	assert.True(t, saved.NetSalary.Equal(generic.NewMoneyFromInt(55000)))

	stored, err := mem.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].NetSalary.Equal(generic.NewMoneyFromInt(55000)))
}

func TestSaveRecord_NegativeComponentIsRejected(t *testing.T) {
	svc, mem := newPayrollService(t, staff()...)

	_, err := svc.SaveRecord(context.Background(), payroll.PayrollRecord{
		ID:          "payroll-EMP001-2024-10",
		EmployeeID:  "EMP001",
		Month:       generic.MonthKey{Year: 2024, Month: time.October},
		BasicSalary: generic.NewMoneyFromInt(-50000),
	})
	assert.ErrorIs(t, err, generic.ErrInvalidInput)

	stored, err := mem.ListRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAddPayment_PersistsAndRemoves(t *testing.T) {
	svc, mem := newPayrollService(t, staff()...)

	p, err := svc.AddPayment(context.Background(), payroll.NewPaymentInput{
		EmployeeID:  "EMP002",
		Date:        "2024-10-14",
		Amount:      300,
		Description: "Conference travel reimbursement",
		Type:        "Reimbursement",
	}, mem)
	require.NoError(t, err)

	payments, err := mem.ListPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, p.ID, payments[0].ID)

	require.NoError(t, svc.RemovePayment(context.Background(), p.ID))
	payments, err = mem.ListPayments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestAddPayment_UnknownEmployeeWritesNothing(t *testing.T) {
	svc, mem := newPayrollService(t, staff()...)

	_, err := svc.AddPayment(context.Background(), payroll.NewPaymentInput{
		EmployeeID:  "EMP999",
		Date:        "2024-10-14",
		Amount:      300,
		Description: "Conference travel reimbursement",
		Type:        "Reimbursement",
	}, mem)
	assert.ErrorIs(t, err, generic.ErrNotFound)

	payments, err := mem.ListPayments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, payments)
}
