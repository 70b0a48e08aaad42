// History export column contract. Exactly these columns, in this order;
// the caller's filtered order is preserved by the export package.
package leave

import (
	"strconv"

	"github.com/warp/admin-core/export"
)

// HistoryColumns is the leave-history export spec. Dates render as ISO
// strings; the day count as a plain integer.
func HistoryColumns() []export.Column[LeaveHistory] {
	return []export.Column[LeaveHistory]{
		{Label: "Employee Name", Value: func(h LeaveHistory) string { return h.EmployeeName }},
		{Label: "Employee ID", Value: func(h LeaveHistory) string { return string(h.EmployeeID) }},
		{Label: "Department", Value: func(h LeaveHistory) string { return h.Department }},
		{Label: "Leave Type", Value: func(h LeaveHistory) string { return h.LeaveType }},
		{Label: "Start Date", Value: func(h LeaveHistory) string { return h.StartDate.String() }},
		{Label: "End Date", Value: func(h LeaveHistory) string { return h.EndDate.String() }},
		{Label: "Days", Value: func(h LeaveHistory) string { return strconv.Itoa(h.Days) }},
		{Label: "Status", Value: func(h LeaveHistory) string { return string(h.Status) }},
		{Label: "Approved By", Value: func(h LeaveHistory) string { return h.ApprovedBy }},
		{Label: "Approved Date", Value: func(h LeaveHistory) string { return h.ApprovedDate.String() }},
		{Label: "Reason", Value: func(h LeaveHistory) string { return h.Reason }},
	}
}

// ExportHistoryCSV serializes an already-filtered history collection.
func ExportHistoryCSV(records []LeaveHistory) (string, error) {
	return export.CSV(records, HistoryColumns())
}

// ExportHistoryXLSX emits the same columns as a workbook.
func ExportHistoryXLSX(records []LeaveHistory) ([]byte, error) {
	return export.XLSX("Leave History", records, HistoryColumns())
}
