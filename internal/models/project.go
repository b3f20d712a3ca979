package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is the owned resource. Collaborators and tasks are embedded
// in the row as JSON columns; every mutation re-saves the whole record.
type Project struct {
	ID          EntityID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string   `gorm:"type:varchar(255);not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	// OwnerID is set at creation and never altered by updates.
	OwnerID       EntityID     `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	Collaborators EntityIDList `gorm:"type:text" json:"collaborators"`
	Tasks         TaskList     `gorm:"type:text" json:"tasks"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID.IsZero() {
		p.ID = NewEntityID()
	}
	return nil
}
