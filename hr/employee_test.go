package hr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
)

func completeOnboarding() hr.Onboarding {
	return hr.Onboarding{
		ID:            "EMP010",
		Name:          "Priya Patel",
		PersonalEmail: "priya.patel@example.com",
		Phone:         "555-0110",
		OfficeEmail:   "priya@company.com",
		NationalID:    "AB1234567",
		Nationality:   "Indian",
		MaritalStatus: "Single",
		DateOfBirth:   "1992-06-14",
		Gender:        "Female",
		Department:    "Engineering",
		Position:      "Backend Engineer",
		BasicSalary:   48000,
	}
}

func TestNewEmployee_FromCompleteOnboarding(t *testing.T) {
	emp, err := hr.NewEmployee(completeOnboarding())

	require.NoError(t, err)
	assert.Equal(t, hr.EmployeeID("EMP010"), emp.ID)
	assert.Equal(t, "Priya Patel", emp.Name)
	assert.True(t, emp.DateOfBirth.Equal(generic.MustDate("1992-06-14")))
	assert.True(t, emp.BasicSalary.Equal(generic.NewMoneyFromInt(48000)))
}

func TestValidateOnboarding_ListsEveryMissingFieldAtOnce(t *testing.T) {
	err := hr.ValidateOnboarding(hr.Onboarding{
		Name:  "Priya Patel",
		Phone: "555-0110",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, generic.ErrInvalidInput)

	var fe *generic.FieldsError
	require.True(t, errors.As(err, &fe))
	assert.ElementsMatch(t, []string{
		"ID", "PersonalEmail", "OfficeEmail", "NationalID",
		"Nationality", "MaritalStatus", "DateOfBirth", "Gender",
	}, fe.Fields)
}

func TestValidateOnboarding_RejectsMalformedEmail(t *testing.T) {
	in := completeOnboarding()
	in.OfficeEmail = "not-an-email"

	err := hr.ValidateOnboarding(in)

	var fe *generic.FieldsError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"OfficeEmail"}, fe.Fields)
}

func TestValidateOnboarding_RejectsUnparseableBirthDate(t *testing.T) {
	in := completeOnboarding()
	in.DateOfBirth = "14/06/1992"

	err := hr.ValidateOnboarding(in)

	var fe *generic.FieldsError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"DateOfBirth"}, fe.Fields)
}
