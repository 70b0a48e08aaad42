// Seed policy definitions the hosting application ships with.
package factory

// StandardPolicyJSON is the default policy covering regular employees.
func StandardPolicyJSON() string {
	return `{
  "id": "policy-standard",
  "name": "Standard Employee Policy",
  "description": "Default leave policy for all regular employees",
  "leave_types": [
    {"id": "lt-annual", "name": "Annual Leave", "days_allowed": 21, "carry_forward": true, "max_carry_forward": 5,
     "description": "Yearly vacation days for personal use", "color": "#3B82F6",
     "eligible_after": 6, "requires_approval": true, "can_be_half_day": true},
    {"id": "lt-sick", "name": "Sick Leave", "days_allowed": 10, "carry_forward": false, "max_carry_forward": 0,
     "description": "Medical leave for illness or health appointments", "color": "#EF4444",
     "eligible_after": 0, "requires_approval": false, "can_be_half_day": true},
    {"id": "lt-personal", "name": "Personal Leave", "days_allowed": 5, "carry_forward": false, "max_carry_forward": 0,
     "description": "Personal time off for urgent personal matters", "color": "#8B5CF6",
     "eligible_after": 3, "requires_approval": true, "can_be_half_day": false},
    {"id": "lt-maternity", "name": "Maternity Leave", "days_allowed": 180, "carry_forward": false, "max_carry_forward": 0,
     "description": "Maternity leave for new mothers", "color": "#F59E0B",
     "eligible_after": 12, "requires_approval": true, "can_be_half_day": false},
    {"id": "lt-paternity", "name": "Paternity Leave", "days_allowed": 14, "carry_forward": false, "max_carry_forward": 0,
     "description": "Paternity leave for new fathers", "color": "#10B981",
     "eligible_after": 12, "requires_approval": true, "can_be_half_day": false}
  ],
  "working_days": ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday"],
  "holidays": ["2024-01-01", "2024-07-04", "2024-12-25"],
  "probation_period": 3,
  "is_default": true
}`
}

// SeniorManagementPolicyJSON is the enhanced policy for senior staff.
func SeniorManagementPolicyJSON() string {
	return `{
  "id": "policy-senior",
  "name": "Senior Management Policy",
  "description": "Enhanced leave policy for senior management",
  "leave_types": [
    {"id": "lt-annual-sr", "name": "Annual Leave", "days_allowed": 28, "carry_forward": true, "max_carry_forward": 10,
     "description": "Extended vacation days for senior staff", "color": "#3B82F6",
     "eligible_after": 0, "requires_approval": false, "can_be_half_day": true},
    {"id": "lt-exec", "name": "Executive Time Off", "days_allowed": 10, "carry_forward": true, "max_carry_forward": 5,
     "description": "Flexible time off for executive responsibilities", "color": "#6366F1",
     "eligible_after": 0, "requires_approval": false, "can_be_half_day": true}
  ],
  "working_days": ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday"],
  "holidays": ["2024-01-01", "2024-07-04", "2024-12-25"],
  "probation_period": 0,
  "is_default": false
}`
}

// SeedPolicyJSONs lists everything loaded at startup, default first.
func SeedPolicyJSONs() []string {
	return []string{StandardPolicyJSON(), SeniorManagementPolicyJSON()}
}
