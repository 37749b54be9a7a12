package model

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type EmployeeLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type AddEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type UpdateEmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SubmitLeaveRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

type SetLeaveStatusRequest struct {
	Status string `json:"status"`
}

type CreatePayrollRequest struct {
	EmployeeID  int64   `json:"employeeId"`
	BasicSalary float64 `json:"basicSalary"`
	Bonus       float64 `json:"bonus"`
	Deductions  float64 `json:"deductions"`
	TaxPercent  float64 `json:"taxPercent"`
	PaymentDate string  `json:"paymentDate"` // YYYY-MM-DD, defaults to today
}

type RecordAttendanceRequest struct {
	InTime  string `json:"inTime"`  // HH:MM
	OutTime string `json:"outTime"` // HH:MM, optional until checkout
}
