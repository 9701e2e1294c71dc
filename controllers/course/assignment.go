package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/database"
	"lms/dto"
	"lms/middleware"
	courseModels "lms/models/course"
)

func findAssignment(c *fiber.Ctx, id uint) (assignment courseModels.Assignment, resp error, ok bool) {
	err := database.Database.Db.First(&assignment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignment, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil), false
	}
	if err != nil {
		return assignment, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil), false
	}
	return assignment, nil, true
}

// ListAssignments answers 404 while a course has no assignments.
func ListAssignments(c *fiber.Ctx) error {
	course, resp, ok := findCourse(c, paramID(c, "id"), false)
	if !ok {
		return resp
	}

	var assignments []courseModels.Assignment
	if err := database.Database.Db.Where("course_id = ?", course.ID).Order("id").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}
	if len(assignments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No assignments found for this course!", nil)
	}

	out := make([]dto.Assignment, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, a.ToDTO())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", out)
}

func CreateAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignment").(*dto.Assignment)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	course, resp, ok := findCourse(c, paramID(c, "id"), false)
	if !ok {
		return resp
	}

	assignment := courseModels.Assignment{CourseID: course.ID}
	assignment.ApplyInput(*reqData)
	if err := database.Database.Db.Create(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment.ToDTO())
}

func UpdateAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignment").(*dto.Assignment)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	assignment, resp, ok := findAssignment(c, paramID(c, "assignmentId"))
	if !ok {
		return resp
	}
	if assignment.CourseID != paramID(c, "id") {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	assignment.ApplyInput(*reqData)
	if err := database.Database.Db.Omit("Submissions").Save(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assignment!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment updated successfully!", assignment.ToDTO())
}

func DeleteAssignment(c *fiber.Ctx) error {
	assignment, resp, ok := findAssignment(c, paramID(c, "assignmentId"))
	if !ok {
		return resp
	}
	if assignment.CourseID != paramID(c, "id") {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", assignment.ID).Delete(&courseModels.Submission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&assignment).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assignment!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment deleted successfully!", nil)
}
