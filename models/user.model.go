package models

import (
	"gorm.io/gorm"
)

const (
	RoleUser       = "USER"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage string `gorm:"default:''"`
	Name         string `gorm:"default:''"`
	Email        string `gorm:"unique;not null"`
	Role         string `gorm:"default:'USER'"` // USER, INSTRUCTOR, ADMIN
	IsBlocked    bool   `gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
