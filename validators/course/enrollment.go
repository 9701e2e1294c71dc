package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/dto"
	"lms/middleware"
	courseModels "lms/models/course"
)

type notificationRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// Notification validates a notification broadcast
func Notification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.Notification)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Message = strings.TrimSpace(reqData.Message)
		reqData.Link = strings.TrimSpace(reqData.Link)

		if err := validate.Struct(notificationRequest{Title: reqData.Title, Message: reqData.Message}); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedNotification", reqData)
		return c.Next()
	}
}

// EnrollUsers validates the user list of a bulk enrollment
func EnrollUsers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.EnrollUsersInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		ids := make([]uint, 0, len(reqData.UserIDs))
		for _, raw := range reqData.UserIDs {
			id, ok := courseModels.ParseID(strings.TrimSpace(raw))
			if !ok {
				return middleware.ValidationErrorResponse(c, map[string]string{"userIds": "Invalid user id " + raw + "!"})
			}
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"userIds": "Select at least one user!"})
		}

		c.Locals("validatedUserIds", ids)
		return c.Next()
	}
}

// UploadCategory validates the :category path parameter
func UploadCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := dto.UploadCategory(c.Params("category"))
		if !category.Valid() {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown upload category!", nil)
		}
		if _, err := c.FormFile("file"); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"file": "File is required!"})
		}
		c.Locals("uploadCategory", category)
		return c.Next()
	}
}
