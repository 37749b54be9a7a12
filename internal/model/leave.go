package model

import "time"

// Leave lifecycle: Pending is the only initial state; Approved and
// Rejected are terminal.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

func ParseLeaveStatus(raw string) (LeaveStatus, bool) {
	switch LeaveStatus(raw) {
	case LeavePending, LeaveApproved, LeaveRejected:
		return LeaveStatus(raw), true
	default:
		return "", false
	}
}

// Terminal reports whether the status permits no further transition.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

type Leave struct {
	ID         int64       `json:"id"`
	EmployeeID int64       `json:"employee_id"`
	Date       time.Time   `json:"date"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PendingLeave is a pending request joined with the requester's
// identity, as shown on the admin approval screen.
type PendingLeave struct {
	Leave
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
}
