package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AuditActionTicketCreated     = "TICKET_CREATED"
	AuditActionTicketUpdated     = "TICKET_UPDATED"
	AuditActionUserCreated       = "USER_CREATED"
	AuditActionUserUpdated       = "USER_UPDATED"
	AuditActionUserStatusChanged = "USER_STATUS_CHANGED"

	AuditTargetTicket = "Ticket"
	AuditTargetUser   = "User"
)

type AuditLog struct {
	ID            uint    `gorm:"primaryKey"`
	Action        string  `gorm:"type:varchar(64);not null;index"`
	PerformedByID *string `gorm:"type:char(36);index"`
	PerformedBy   *User   `gorm:"foreignKey:PerformedByID"`
	TargetType    string  `gorm:"type:varchar(32)"`
	TargetID      string  `gorm:"type:char(36);index"`
	Details       datatypes.JSONMap
	CreatedAt     time.Time `gorm:"index"`
}
