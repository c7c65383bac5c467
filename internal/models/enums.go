package models

// Section groups students and classes by school level.
type Section string

const (
	SectionPrimary    Section = "primary"
	SectionSecondary  Section = "secondary"
	SectionHighschool Section = "highschool"
)

// Sections lists every supported section in display order.
var Sections = []Section{SectionPrimary, SectionSecondary, SectionHighschool}

// Valid returns true when the section is a supported value.
func (s Section) Valid() bool {
	switch s {
	case SectionPrimary, SectionSecondary, SectionHighschool:
		return true
	default:
		return false
	}
}

// Gender captures the recorded gender of a person.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid returns true when the gender is a supported value.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// EmployeeRole describes the job an employee performs.
type EmployeeRole string

const (
	EmployeeRoleTeacher EmployeeRole = "teacher"
	EmployeeRoleDriver  EmployeeRole = "driver"
	EmployeeRoleCleaner EmployeeRole = "cleaner"
	EmployeeRoleGuard   EmployeeRole = "guard"
	EmployeeRoleAdmin   EmployeeRole = "admin"
	EmployeeRoleStaff   EmployeeRole = "staff"
)

// Valid returns true when the role is a supported value.
func (r EmployeeRole) Valid() bool {
	switch r {
	case EmployeeRoleTeacher, EmployeeRoleDriver, EmployeeRoleCleaner, EmployeeRoleGuard, EmployeeRoleAdmin, EmployeeRoleStaff:
		return true
	default:
		return false
	}
}

// Shift is the working period of an employee.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

// Valid returns true when the shift is a supported value.
func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening:
		return true
	default:
		return false
	}
}

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks the settlement state of a fee.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusOverdue  PaymentStatus = "overdue"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentStatuses lists every payment status.
var PaymentStatuses = []PaymentStatus{PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusOverdue, PaymentStatusRefunded}

// Valid returns true when the status is a supported value.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusOverdue, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Weekday names a school day for timetable slots.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Valid returns true when the day is a supported value.
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	default:
		return false
	}
}
