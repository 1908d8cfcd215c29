package domain

import "time"

// User is either a designer (FirmID set, at most one firm) or a client
// (attached to firms and projects through explicit join rows).
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name" validate:"required,max=100"`
	FirmID       *int64    `json:"firm_id,omitempty"`
	Firm         *Firm     `json:"-" gorm:"foreignKey:FirmID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsDesignerRole reports whether the user has any firm affiliation at all.
// This is the coarse role flag used to gate project creation; per-project
// permissions go through ProjectDesigner rows instead.
func (u *User) IsDesignerRole() bool {
	return u.FirmID != nil
}

type Firm struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name" validate:"required"`
	WebsiteURL string    `json:"website_url,omitempty"`
	OwnerID    int64     `json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Projects []Project `json:"projects,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// FirmClient joins a client user to a firm.
type FirmClient struct {
	ID        int64     `json:"id"`
	FirmID    int64     `json:"firm_id" gorm:"uniqueIndex:idx_firms_clients_pair"`
	ClientID  int64     `json:"client_id" gorm:"uniqueIndex:idx_firms_clients_pair"`
	CreatedAt time.Time `json:"created_at"`
}

func (FirmClient) TableName() string { return "firms_clients" }

// ProjectClient joins a client user to a single project.
type ProjectClient struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id" gorm:"uniqueIndex:idx_projects_clients_pair"`
	ClientID  int64     `json:"client_id" gorm:"uniqueIndex:idx_projects_clients_pair"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProjectClient) TableName() string { return "projects_clients" }

// ProjectDesigner joins a designer user to a single project. Being a member
// of the owning firm is not enough to act as a designer on a project; the
// explicit assignment is the canonical check.
type ProjectDesigner struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id" gorm:"uniqueIndex:idx_projects_designers_pair"`
	DesignerID int64     `json:"designer_id" gorm:"uniqueIndex:idx_projects_designers_pair"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ProjectDesigner) TableName() string { return "projects_designers" }
