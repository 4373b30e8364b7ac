package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAlumni  Role = "ALUMNI"
	RoleHR      Role = "HR"
	RoleTPO     Role = "TPO"
	RoleAdmin   Role = "ADMIN"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleHR, RoleTPO, RoleAdmin:
		return true
	}
	return false
}

// IsPrivileged reports whether the role carries TPO/admin capabilities.
func (r Role) IsPrivileged() bool {
	return r == RoleTPO || r == RoleAdmin
}

// AccountStatus defines the user account status
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountBanned AccountStatus = "BANNED"
)

// ApprovalStatus defines the placement drive approval state
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// IsTerminal reports whether the drive can no longer transition.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// ApplicationStatus defines the lifecycle state of a student application
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "Applied"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationRejected    ApplicationStatus = "Rejected"
	ApplicationSelected    ApplicationStatus = "Selected"
)

// IsValid reports whether the status is one of the known states.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationApplied, ApplicationShortlisted, ApplicationRejected, ApplicationSelected:
		return true
	}
	return false
}

// NotificationType tags a notification for the client UI
type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationAlert   NotificationType = "ALERT"
	NotificationSuccess NotificationType = "SUCCESS"
)
