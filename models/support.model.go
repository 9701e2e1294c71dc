package models

import (
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/dto"
)

type SupportTicket struct {
	gorm.Model
	UserID   uint  `gorm:"index;not null"`
	CourseID *uint `gorm:"index"`
	Title    string
	Subject  string
	Messages datatypes.JSONSlice[dto.TicketMessage]
	Status   string `gorm:"default:'OPEN'"`   // OPEN, PENDING, CLOSED
	Priority string `gorm:"default:'MEDIUM'"` // LOW, MEDIUM, HIGH
	Category string `gorm:"default:'GENERAL'"`
}

func (t SupportTicket) ToDTO() dto.Ticket {
	out := dto.Ticket{
		ID:        strconv.FormatUint(uint64(t.ID), 10),
		UserID:    strconv.FormatUint(uint64(t.UserID), 10),
		Title:     t.Title,
		Subject:   t.Subject,
		Status:    dto.TicketStatus(t.Status),
		Priority:  dto.TicketPriority(t.Priority),
		Category:  dto.TicketCategory(t.Category),
		Messages:  []dto.TicketMessage(t.Messages),
		CreatedAt: t.CreatedAt,
	}
	if t.CourseID != nil {
		out.CourseID = strconv.FormatUint(uint64(*t.CourseID), 10)
	}
	if out.Messages == nil {
		out.Messages = []dto.TicketMessage{}
	}
	return out
}
