package entity

import (
	"database/sql"

	"github.com/collabflow/backend/pkg/enum"
)

type ProjectStatus string

var (
	ProjectStatusPlanning   = enum.New(ProjectStatus("planning"))
	ProjectStatusInProgress = enum.New(ProjectStatus("in-progress"))
	ProjectStatusCompleted  = enum.New(ProjectStatus("completed"))
	ProjectStatusOnHold     = enum.New(ProjectStatus("on-hold"))
)

type Project struct {
	Base
	Name        string `gorm:"not null"`
	Description string
	ManagerID   string         `gorm:"not null;index"`
	TeamID      sql.NullString `gorm:"index"`
	Status      ProjectStatus  `gorm:"default:planning"`
	Progress    int            `gorm:"default:0"`
	Budget      float64
	Deadline    sql.NullTime

	Manager User `gorm:"foreignKey:ManagerID"`
	Team    Team `gorm:"foreignKey:TeamID"`
}
