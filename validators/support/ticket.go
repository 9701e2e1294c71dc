package supportValidators

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/dto"
	"lms/middleware"
	courseModels "lms/models/course"
)

var invalidTitleChars = regexp.MustCompile(`[<>{}]`)

var (
	validStatus   = map[dto.TicketStatus]bool{dto.TicketOpen: true, dto.TicketPending: true, dto.TicketClosed: true}
	validPriority = map[dto.TicketPriority]bool{dto.PriorityLow: true, dto.PriorityMedium: true, dto.PriorityHigh: true}
	validCategory = map[dto.TicketCategory]bool{dto.TicketGeneral: true, dto.TicketTechnical: true, dto.TicketCourse: true}
)

func CreateSupportTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.TicketInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Title validation
		reqData.Title = strings.TrimSpace(reqData.Title)
		switch {
		case reqData.Title == "":
			errors["title"] = "Title is required!"
		case len(reqData.Title) < 3:
			errors["title"] = "Title must be at least 3 characters long!"
		case len(reqData.Title) > 100:
			errors["title"] = "Title must not exceed 100 characters!"
		case invalidTitleChars.MatchString(reqData.Title):
			errors["title"] = "Title contains invalid characters (e.g., <, >, {, })!"
		}

		reqData.Subject = strings.TrimSpace(reqData.Subject)
		if len(reqData.Subject) > 200 {
			errors["subject"] = "Subject must not exceed 200 characters!"
		}

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}

		reqData.Priority = dto.TicketPriority(strings.ToUpper(string(reqData.Priority)))
		if reqData.Priority == "" {
			reqData.Priority = dto.PriorityMedium
		} else if !validPriority[reqData.Priority] {
			errors["priority"] = "Invalid priority! Allowed: LOW, MEDIUM, HIGH"
		}
		reqData.Category = dto.TicketCategory(strings.ToUpper(string(reqData.Category)))
		if reqData.Category == "" {
			reqData.Category = dto.TicketGeneral
		} else if !validCategory[reqData.Category] {
			errors["category"] = "Invalid category! Allowed: GENERAL, TECHNICAL, COURSE"
		}

		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		if reqData.CourseID != "" {
			if _, ok := courseModels.ParseID(reqData.CourseID); !ok {
				errors["courseId"] = "Invalid course id!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSupportTicket", reqData)
		return c.Next()
	}
}

// TicketList validates the paging and filter query of both ticket lists.
func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.TicketQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Basic pagination validation
		if reqData.Page == 0 {
			reqData.Page = 1
		} else if reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit == 0 {
			reqData.Limit = 10
		} else if reqData.Limit < 1 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		reqData.Status = dto.TicketStatus(strings.ToUpper(string(reqData.Status)))
		if reqData.Status != "" && !validStatus[reqData.Status] {
			errors["status"] = "Invalid status! Must be one of: OPEN, CLOSED, PENDING."
		}
		reqData.Priority = dto.TicketPriority(strings.ToUpper(string(reqData.Priority)))
		if reqData.Priority != "" && !validPriority[reqData.Priority] {
			errors["priority"] = "Invalid priority! Must be one of: LOW, MEDIUM, HIGH."
		}
		reqData.Category = dto.TicketCategory(strings.ToUpper(string(reqData.Category)))
		if reqData.Category != "" && !validCategory[reqData.Category] {
			errors["category"] = "Invalid category! Must be one of: GENERAL, TECHNICAL, COURSE."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func ReplyTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"message": "Reply message is required!"})
		}

		c.Locals("validatedReply", reqData.Message)
		return c.Next()
	}
}
