package factory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/admin-core/factory"
	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/leave"
)

func TestParsePolicy_StandardSeed(t *testing.T) {
	p, err := factory.ParsePolicy(factory.StandardPolicyJSON())

	require.NoError(t, err)
	assert.Equal(t, leave.PolicyID("policy-standard"), p.ID)
	assert.Equal(t, "Standard Employee Policy", p.Name)
	assert.True(t, p.IsDefault)
	assert.Equal(t, 3, p.ProbationPeriod)
	assert.Equal(t, leave.DefaultWorkingDays, p.WorkingDays)
	require.Len(t, p.Holidays, 3)
	assert.True(t, p.Holidays[2].Equal(generic.MustDate("2024-12-25")))

	require.Len(t, p.LeaveTypes, 5)
	annual, err := p.TypeByID("lt-annual")
	require.NoError(t, err)
	assert.Equal(t, 21, annual.DaysAllowed)
	assert.True(t, annual.CarryForward)
	assert.Equal(t, 5, annual.MaxCarryForward)
	assert.True(t, annual.IsActive)
}

func TestParsePolicy_SeniorSeedIsNotDefault(t *testing.T) {
	p, err := factory.ParsePolicy(factory.SeniorManagementPolicyJSON())

	require.NoError(t, err)
	assert.False(t, p.IsDefault)
	assert.Equal(t, 0, p.ProbationPeriod)
	assert.Len(t, p.LeaveTypes, 2)
}

func TestSeedPolicyJSONs_DefaultComesFirst(t *testing.T) {
	seeds := factory.SeedPolicyJSONs()
	require.Len(t, seeds, 2)

	first, err := factory.ParsePolicy(seeds[0])
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := factory.ParsePolicy(seeds[1])
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
}

func TestParsePolicy_MissingNameRejected(t *testing.T) {
	_, err := factory.ParsePolicy(`{"id": "policy-x"}`)
	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}

func TestParsePolicy_MalformedJSONRejected(t *testing.T) {
	_, err := factory.ParsePolicy(`{not json`)
	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}

func TestParsePolicy_UnknownWeekdayRejected(t *testing.T) {
	_, err := factory.ParsePolicy(`{
		"name": "Weird Calendar Policy",
		"working_days": ["Monday", "Funday"]
	}`)
	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}

func TestParsePolicy_LeaveTypeValidationPropagates(t *testing.T) {
	// A cap on a type that does not carry forward fails type validation.
	_, err := factory.ParsePolicy(`{
		"name": "Broken Policy",
		"leave_types": [
			{"name": "Sick Leave", "days_allowed": 10, "carry_forward": false, "max_carry_forward": 3}
		]
	}`)
	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}

func TestParsePolicy_DefaultsApplied(t *testing.T) {
	p, err := factory.ParsePolicy(`{
		"name": "Minimal Policy",
		"leave_types": [
			{"name": "Annual Leave", "days_allowed": 15, "active": false}
		]
	}`)

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, leave.DefaultWorkingDays, p.WorkingDays)
	require.Len(t, p.LeaveTypes, 1)
	assert.False(t, p.LeaveTypes[0].IsActive)
	assert.Equal(t, time.Monday, p.WorkingDays[0])
}
