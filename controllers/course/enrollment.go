package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/database"
	"lms/dto"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
)

// enroll creates missing enrollments of userIDs in courseID and reports how
// many were created and how many already existed.
func enroll(db *gorm.DB, courseID uint, userIDs []uint, source string) (dto.EnrollmentResult, error) {
	var result dto.EnrollmentResult
	if len(userIDs) == 0 {
		return result, nil
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing []uint
		if err := tx.Model(&courseModels.Enrollment{}).
			Where("course_id = ? AND user_id IN ?", courseID, userIDs).
			Pluck("user_id", &existing).Error; err != nil {
			return err
		}
		have := make(map[uint]bool, len(existing))
		for _, id := range existing {
			have[id] = true
		}

		var rows []courseModels.Enrollment
		for _, id := range userIDs {
			if have[id] {
				result.Skipped++
				continue
			}
			have[id] = true
			rows = append(rows, courseModels.Enrollment{UserID: id, CourseID: courseID, Source: source})
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		result.Enrolled = len(rows)
		return nil
	})
	return result, err
}

// EnrollAll enrolls every active learner in the course.
func EnrollAll(c *fiber.Ctx) error {
	course, resp, ok := findCourse(c, paramID(c, "courseId"), false)
	if !ok {
		return resp
	}

	var userIDs []uint
	if err := database.Database.Db.Model(&models.User{}).
		Where("role = ? AND is_deleted = ? AND is_blocked = ?", models.RoleUser, false, false).
		Pluck("id", &userIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	result, err := enroll(database.Database.Db, course.ID, userIDs, "ENROLL_ALL")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users enrolled successfully!", result)
}

// EnrollUsers enrolls the listed users; unknown ids are rejected.
func EnrollUsers(c *fiber.Ctx) error {
	userIDs, ok := c.Locals("validatedUserIds").([]uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	course, resp, ok := findCourse(c, paramID(c, "courseId"), false)
	if !ok {
		return resp
	}

	var found int64
	if err := database.Database.Db.Model(&models.User{}).Where("id IN ?", userIDs).Count(&found).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	if int(found) != len(uniqueIDs(userIDs)) {
		return middleware.ValidationErrorResponse(c, map[string]string{"userIds": "Some users do not exist!"})
	}

	result, err := enroll(database.Database.Db, course.ID, userIDs, "ADMIN")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users enrolled successfully!", result)
}

func uniqueIDs(ids []uint) map[uint]bool {
	out := make(map[uint]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
