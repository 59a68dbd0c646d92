package entity

import (
	"database/sql"

	"github.com/collabflow/backend/pkg/enum"
)

type InitiativeStatus string

var (
	InitiativeStatusPending    = enum.New(InitiativeStatus("pending"))
	InitiativeStatusInProgress = enum.New(InitiativeStatus("in-progress"))
	InitiativeStatusCompleted  = enum.New(InitiativeStatus("completed"))
	InitiativeStatusOnHold     = enum.New(InitiativeStatus("on-hold"))
)

type Initiative struct {
	Base
	Title       string `gorm:"not null"`
	Description string
	OwnerID     string           `gorm:"not null;index"`
	Status      InitiativeStatus `gorm:"default:pending"`
	Progress    int              `gorm:"default:0"`
	Priority    string
	TargetDate  sql.NullTime

	Owner User `gorm:"foreignKey:OwnerID"`
}
