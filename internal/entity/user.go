package entity

import "github.com/collabflow/backend/pkg/enum"

type GlobalRole string

var (
	RoleAdmin   = enum.New(GlobalRole("admin"))
	RoleManager = enum.New(GlobalRole("manager"))
	RoleMember  = enum.New(GlobalRole("member"))
)

var GlobalAdminRoles = []GlobalRole{RoleAdmin}

type UserStatus string

var (
	UserStatusActive   = enum.New(UserStatus("active"))
	UserStatusInactive = enum.New(UserStatus("inactive"))
)

type User struct {
	Base
	FirstName      string
	LastName       string
	Email          string `gorm:"unique"`
	HashedPassword string
	Role           GlobalRole `gorm:"default:member"`
	Department     string
	AvatarURL      string
	Status         UserStatus `gorm:"default:active"`
}
