package domain

import "time"

type ProjectStatus string

const (
	ProjectNew                ProjectStatus = "new"
	ProjectInProgress         ProjectStatus = "in_progress"
	ProjectWaitingForApproval ProjectStatus = "waiting_for_approval"
	ProjectDone               ProjectStatus = "done"
)

var ProjectStatuses = []ProjectStatus{
	ProjectNew,
	ProjectInProgress,
	ProjectWaitingForApproval,
	ProjectDone,
}

func ValidProjectStatus(s ProjectStatus) bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Project struct {
	ID        int64         `json:"id"`
	FirmID    int64         `json:"firm_id"`
	Name      string        `json:"name" validate:"required"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
