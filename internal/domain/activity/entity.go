// Package activity holds a user's interactions with listings: saved jobs and
// the folders organizing them, submitted applications, and saved search
// filters.
package activity

import (
	"time"

	"vaga-hub/internal/domain/listing"

	"github.com/google/uuid"
)

type Folder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

type SavedJob struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	JobID    uuid.UUID
	FolderID *uuid.UUID
	SavedAt  time.Time
}

type Application struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	JobID     uuid.UUID
	AppliedAt time.Time
}

type SavedFilter struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Criteria  listing.Criteria
	CreatedAt time.Time
}
