package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Ticket struct {
	ID                  string `gorm:"type:char(36);primaryKey"`
	Title               string `gorm:"not null"`
	DescriptionMarkdown string `gorm:"type:text;not null"`
	Images              datatypes.JSONSlice[string]
	Status              TicketStatus `gorm:"type:varchar(20);not null;index"`

	CreatedByID    string  `gorm:"type:char(36);not null;index"`
	CreatedBy      *User   `gorm:"foreignKey:CreatedByID"`
	MarkedDownByID *string `gorm:"type:char(36)"`
	MarkedDownBy   *User   `gorm:"foreignKey:MarkedDownByID"`
	MarkedDownAt   *time.Time

	Comments      []Comment      `gorm:"foreignKey:TicketID"`
	StatusHistory []StatusChange `gorm:"foreignKey:TicketID"`

	// Version guards the load-mutate-save cycle against concurrent writers.
	Version   int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = TicketStatusOpen
	}
	return nil
}

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  string `gorm:"type:char(36);not null;index"`
	Message   string `gorm:"type:text;not null"`
	AuthorID  string `gorm:"type:char(36);not null"`
	Author    *User  `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
}

type StatusChange struct {
	ID          uint         `gorm:"primaryKey"`
	TicketID    string       `gorm:"type:char(36);not null;index"`
	Status      TicketStatus `gorm:"type:varchar(20);not null"`
	ChangedByID string       `gorm:"type:char(36);not null"`
	ChangedBy   *User        `gorm:"foreignKey:ChangedByID"`
	ChangedAt   time.Time
}
