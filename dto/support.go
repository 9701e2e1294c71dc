package dto

import "time"

type TicketStatus string

const (
	TicketOpen    TicketStatus = "OPEN"
	TicketPending TicketStatus = "PENDING"
	TicketClosed  TicketStatus = "CLOSED"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "LOW"
	PriorityMedium TicketPriority = "MEDIUM"
	PriorityHigh   TicketPriority = "HIGH"
)

type TicketCategory string

const (
	TicketGeneral   TicketCategory = "GENERAL"
	TicketTechnical TicketCategory = "TECHNICAL"
	TicketCourse    TicketCategory = "COURSE"
)

// TicketMessage is one entry of a ticket conversation. Sender is "user"
// or "staff".
type TicketMessage struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	Time   time.Time `json:"time"`
}

type Ticket struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	CourseID  string          `json:"courseId,omitempty"`
	Title     string          `json:"title"`
	Subject   string          `json:"subject,omitempty"`
	Status    TicketStatus    `json:"status"`
	Priority  TicketPriority  `json:"priority"`
	Category  TicketCategory  `json:"category"`
	Messages  []TicketMessage `json:"messages"`
	CreatedAt time.Time       `json:"createdAt"`
}

type TicketInput struct {
	Title    string         `json:"title"`
	Subject  string         `json:"subject"`
	Message  string         `json:"message"`
	Priority TicketPriority `json:"priority"`
	Category TicketCategory `json:"category"`
	CourseID string         `json:"courseId"`
}

// TicketQuery filters ticket lists. Zero values mean "any".
type TicketQuery struct {
	Page     int            `query:"page"`
	Limit    int            `query:"limit"`
	Status   TicketStatus   `query:"status"`
	Priority TicketPriority `query:"priority"`
	Category TicketCategory `query:"category"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type TicketPage struct {
	Tickets    []Ticket   `json:"tickets"`
	Pagination Pagination `json:"pagination"`
}

type TicketStats struct {
	Open    int64 `json:"open"`
	Pending int64 `json:"pending"`
	Closed  int64 `json:"closed"`
}
