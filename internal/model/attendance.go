package model

import "time"

// Attendance holds one row per employee per day; re-submitting the same
// day overwrites the times.
type Attendance struct {
	EmployeeID int64     `json:"employee_id"`
	Date       time.Time `json:"date"`
	InTime     string    `json:"in_time"`
	OutTime    string    `json:"out_time"`
}

// AttendanceRecord is an attendance row joined with the employee's name
// for the admin overview.
type AttendanceRecord struct {
	Attendance
	EmployeeName string `json:"employee_name"`
}
