package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/dto"
	"lms/middleware"
	courseModels "lms/models/course"
)

// courseFromLink extracts the course id of links shaped "/courses/<id>...".
func courseFromLink(link string) *uint {
	rest, ok := strings.CutPrefix(link, "/courses/")
	if !ok {
		return nil
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	id, ok := courseModels.ParseID(rest)
	if !ok {
		return nil
	}
	return &id
}

// CreateNotification queues a notification for the dispatcher. Delivery
// happens asynchronously; the response only confirms it was queued.
func CreateNotification(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNotification").(*dto.Notification)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	n := courseModels.Notification{
		Title:     reqData.Title,
		Message:   reqData.Message,
		Link:      reqData.Link,
		Global:    reqData.Global,
		CourseID:  courseFromLink(reqData.Link),
		CreatedBy: middleware.UserID(c),
	}
	if !n.Global && n.CourseID == nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"link": "A course link is required unless the notification is global!",
		})
	}
	if err := database.Database.Db.Create(&n).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to queue notification!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Notification queued!", nil)
}
