package supportControllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/database"
	"lms/dto"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
)

func isStaff(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == models.RoleAdmin || role == models.RoleInstructor
}

func CreateSupportTicket(c *fiber.Ctx) error {
	// Get validated data
	reqData, ok := c.Locals("validatedSupportTicket").(*dto.TicketInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Prepare ticket model with the opening message
	ticket := models.SupportTicket{
		UserID:   middleware.UserID(c),
		Title:    reqData.Title,
		Subject:  reqData.Subject,
		Status:   string(dto.TicketOpen),
		Priority: string(reqData.Priority),
		Category: string(reqData.Category),
		Messages: datatypes.JSONSlice[dto.TicketMessage]{
			{Sender: "user", Text: reqData.Message, Time: time.Now().UTC()},
		},
	}
	// Check the linked course exists
	if id, ok := courseModels.ParseID(reqData.CourseID); ok {
		var count int64
		database.Database.Db.Model(&courseModels.Course{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"courseId": "Course not found!"})
		}
		ticket.CourseID = &id
	}

	// Save ticket
	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Support ticket created successfully!", ticket.ToDTO())
}

// listTickets pages through q with the validated filters.
func listTickets(c *fiber.Ctx, q *gorm.DB) error {
	reqData, ok := c.Locals("validatedList").(*dto.TicketQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	// Apply filters
	if reqData.Status != "" {
		q = q.Where("status = ?", reqData.Status)
	}
	if reqData.Priority != "" {
		q = q.Where("priority = ?", reqData.Priority)
	}
	if reqData.Category != "" {
		q = q.Where("category = ?", reqData.Category)
	}

	// Count total
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	// Fetch paginated tickets
	var tickets []models.SupportTicket
	offset := (reqData.Page - 1) * reqData.Limit
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(reqData.Limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	page := dto.TicketPage{
		Tickets:    make([]dto.Ticket, 0, len(tickets)),
		Pagination: dto.Pagination{Total: total, Page: reqData.Page, Limit: reqData.Limit},
	}
	for _, t := range tickets {
		page.Tickets = append(page.Tickets, t.ToDTO())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", page)
}

// TicketList returns the caller's own tickets.
func TicketList(c *fiber.Ctx) error {
	q := database.Database.Db.Model(&models.SupportTicket{}).Where("user_id = ?", middleware.UserID(c))
	return listTickets(c, q)
}

func AdminTicketList(c *fiber.Ctx) error {
	return listTickets(c, database.Database.Db.Model(&models.SupportTicket{}))
}

func AdminSupportStats(c *fiber.Ctx) error {
	var stats dto.TicketStats
	for status, dest := range map[dto.TicketStatus]*int64{
		dto.TicketOpen:    &stats.Open,
		dto.TicketPending: &stats.Pending,
		dto.TicketClosed:  &stats.Closed,
	} {
		if err := database.Database.Db.Model(&models.SupportTicket{}).Where("status = ?", status).Count(dest).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch support stats!", nil)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Support stats fetched successfully!", stats)
}

// findTicket loads the :id ticket. Learners only reach their own tickets.
func findTicket(c *fiber.Ctx) (ticket models.SupportTicket, resp error, ok bool) {
	id, _ := c.Locals("id").(uint)
	q := database.Database.Db
	if !isStaff(c) {
		q = q.Where("user_id = ?", middleware.UserID(c))
	}
	err := q.First(&ticket, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil), false
	}
	if err != nil {
		return ticket, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ticket!", nil), false
	}
	return ticket, nil, true
}

// ReplyTicket appends a message. A staff reply marks the ticket PENDING
// (waiting on the user); a user reply reopens it.
func ReplyTicket(c *fiber.Ctx) error {
	text, _ := c.Locals("validatedReply").(string)
	ticket, resp, ok := findTicket(c)
	if !ok {
		return resp
	}
	if ticket.Status == string(dto.TicketClosed) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Ticket is closed!", nil)
	}

	// Staff answering someone else's ticket waits on the user
	sender, status := "user", dto.TicketOpen
	if isStaff(c) && ticket.UserID != middleware.UserID(c) {
		sender, status = "staff", dto.TicketPending
	}
	ticket.Messages = append(ticket.Messages, dto.TicketMessage{Sender: sender, Text: text, Time: time.Now().UTC()})
	ticket.Status = string(status)

	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reply!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply sent successfully!", ticket.ToDTO())
}

func CloseTicket(c *fiber.Ctx) error {
	ticket, resp, ok := findTicket(c)
	if !ok {
		return resp
	}
	if ticket.Status == string(dto.TicketClosed) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Ticket is already closed!", nil)
	}
	ticket.Status = string(dto.TicketClosed)
	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket closed successfully!", ticket.ToDTO())
}
