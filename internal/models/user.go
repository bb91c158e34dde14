package models

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleEmployee   Role = "employee"
	RoleHR         Role = "hr"
	RoleSupervisor Role = "supervisor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleHR, RoleSupervisor:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'employee'"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	Phone        string `gorm:"size:50"`
	Address      string `gorm:"size:255"`
	City         string `gorm:"size:100"`
	PostalCode   string `gorm:"size:20"`
	Country      string `gorm:"size:100"`
}

// Principal is the authenticated identity carried in the session cookie.
type Principal struct {
	UserID   uint
	Username string
	Role     Role
}
