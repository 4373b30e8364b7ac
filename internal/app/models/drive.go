package models

import (
	"time"
)

// PlacementDrive defines a company hiring campaign based on the 'placement_drives' table
type PlacementDrive struct {
	ID              int64          `json:"id" db:"id"`
	CompanyName     string         `json:"companyName" db:"company_name"`
	Role            string         `json:"role" db:"role"`
	Package         string         `json:"package" db:"package_val"` // Opaque string, e.g. "12 LPA"
	Location        string         `json:"location" db:"location"`
	Date            time.Time      `json:"date" db:"date"`
	Deadline        time.Time      `json:"deadline" db:"deadline"`
	Description     string         `json:"description" db:"description"`
	Eligibility     string         `json:"eligibility" db:"eligibility"`
	Type            string         `json:"type" db:"type"` // Full-time, Internship
	ApprovalStatus  ApprovalStatus `json:"approvalStatus" db:"approval_status"`
	ReviewedBy      *int64         `json:"reviewedBy,omitempty" db:"reviewed_by"`
	ReviewedAt      *time.Time     `json:"reviewedAt,omitempty" db:"reviewed_at"`
	RejectionReason *string        `json:"rejectionReason,omitempty" db:"rejection_reason"`
	CreatedBy       int64          `json:"createdBy" db:"created_by"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
}
