package leave_test

import (
	"github.com/warp/admin-core/generic"
	"github.com/warp/admin-core/hr"
	"github.com/warp/admin-core/leave"
)

// =============================================================================
// SHARED FIXTURES
// =============================================================================

func pendingRequest(id string) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:            leave.RequestID(id),
		EmployeeID:    "EMP001",
		EmployeeName:  "John Smith",
		Department:    "Engineering",
		LeaveType:     "Annual Leave",
		StartDate:     generic.MustDate("2024-10-15"),
		EndDate:       generic.MustDate("2024-10-18"),
		Days:          4,
		Reason:        "Family vacation",
		Status:        leave.StatusPending,
		SubmittedDate: generic.MustDate("2024-10-01"),
		Priority:      leave.PriorityMedium,
	}
}

func historyRecord(id, name, empID, dept, leaveType, start, end string, days int, status leave.Status, reason string) leave.LeaveHistory {
	startDate := generic.MustDate(start)
	return leave.LeaveHistory{
		ID:            leave.RequestID(id),
		EmployeeID:    hr.EmployeeID(empID),
		EmployeeName:  name,
		Department:    dept,
		LeaveType:     leaveType,
		StartDate:     startDate,
		EndDate:       generic.MustDate(end),
		Days:          days,
		Reason:        reason,
		Status:        status,
		SubmittedDate: startDate.AddDays(-10),
		ApprovedBy:    "Admin User",
		ApprovedDate:  startDate.AddDays(-5),
		Year:          startDate.Year(),
	}
}

// sampleHistory has eight records: six in 2024 (4+3+3+5+3+3 = 21 days)
// and two in 2023.
func sampleHistory() []leave.LeaveHistory {
	return []leave.LeaveHistory{
		historyRecord("1", "John Smith", "EMP001", "Engineering", "Annual Leave", "2024-08-15", "2024-08-18", 4, leave.StatusApproved, "Family vacation"),
		historyRecord("2", "Sarah Johnson", "EMP002", "Marketing", "Sick Leave", "2024-07-10", "2024-07-12", 3, leave.StatusApproved, "Medical appointment"),
		historyRecord("3", "Mike Wilson", "EMP003", "Sales", "Personal Leave", "2024-06-20", "2024-06-22", 3, leave.StatusApproved, "Personal matters"),
		historyRecord("4", "Emma Davis", "EMP004", "HR", "Annual Leave", "2024-05-01", "2024-05-05", 5, leave.StatusApproved, "Spring vacation"),
		historyRecord("5", "David Brown", "EMP005", "Finance", "Sick Leave", "2024-04-15", "2024-04-17", 3, leave.StatusApproved, "Flu recovery"),
		historyRecord("6", "Lisa Anderson", "EMP006", "Design", "Personal Leave", "2024-03-10", "2024-03-12", 3, leave.StatusRejected, "Moving house"),
		historyRecord("7", "Tom Garcia", "EMP007", "Engineering", "Annual Leave", "2023-12-20", "2023-12-31", 12, leave.StatusApproved, "Holiday vacation"),
		historyRecord("8", "Rachel White", "EMP008", "Marketing", "Maternity Leave", "2023-09-01", "2023-11-30", 90, leave.StatusApproved, "Maternity leave"),
	}
}

func annualLeave() leave.LeaveType {
	return leave.LeaveType{
		ID:              "lt-annual",
		Name:            "Annual Leave",
		DaysAllowed:     21,
		CarryForward:    true,
		MaxCarryForward: 5,
		EligibleAfter:   6,
		IsActive:        true,
	}
}
