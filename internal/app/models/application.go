package models

import (
	"time"
)

// Application defines a student's application to a drive based on the 'applications' table.
// (UserID, DriveID) is unique; the constraint lives in the database, not the handler.
type Application struct {
	ID        int64             `json:"id" db:"id"`
	UserID    int64             `json:"userId" db:"user_id"`
	DriveID   int64             `json:"driveId" db:"drive_id"`
	Status    ApplicationStatus `json:"status" db:"status"`
	Resume    *string           `json:"resume,omitempty" db:"resume"` // Resume link snapshot
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`

	User  *User           `json:"user,omitempty"`  // Relation, no db tag
	Drive *PlacementDrive `json:"drive,omitempty"` // Relation, no db tag
}
