package constants

// Role của nhân viên (chỉ nằm trong token claim và middleware,
// không phải trường status trên wire)
const (
	RoleEmployee = 0
	RoleHR       = 1
	RoleAdmin    = 2
)

// Trạng thái thanh toán của payroll record.
//
// Bảng mapping wire duy nhất cho mọi endpoint (hệ thống cũ trả int ở vài
// payload, string ở payload khác):
//
//	0 -> Pending, 1 -> Processed, 2 -> Paid
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusProcessed = "Processed"
	PaymentStatusPaid      = "Paid"
)

// Trạng thái chấm công theo ngày
const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusHalfDay = "HalfDay"
	AttendanceStatusAbsent  = "Absent"
	AttendanceStatusLeave   = "Leave"
	AttendanceStatusHoliday = "Holiday"
)

// Trạng thái đơn nghỉ phép
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Trạng thái nhân viên
const (
	EmployeeStatusActive   = "Active"
	EmployeeStatusInactive = "Inactive"
)

// Action của audit log
const (
	AuditActionCreated = "Created"
	AuditActionUpdated = "Updated"
	AuditActionDeleted = "Deleted"
)

// Actor sentinel khi mutation không gắn với user đăng nhập (cron, seed)
const AuditActorSystem = "SYSTEM"
