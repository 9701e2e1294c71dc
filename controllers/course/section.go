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

// findSection loads a section of courseID or writes the 404 response.
func findSection(c *fiber.Ctx, courseID, sectionID uint) (section courseModels.Section, resp error, ok bool) {
	err := database.Database.Db.
		Where("id = ? AND course_id = ?", sectionID, courseID).
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index, id") }).
		First(&section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return section, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil), false
	}
	if err != nil {
		return section, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch section!", nil), false
	}
	return section, nil, true
}

// ListSections returns the course outline with modules, in display order.
func ListSections(c *fiber.Ctx) error {
	course, resp, ok := findCourse(c, paramID(c, "id"), true)
	if !ok {
		return resp
	}
	out := make([]dto.Section, 0, len(course.Sections))
	for _, s := range course.Sections {
		out = append(out, s.ToDTO())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", out)
}

func CreateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*dto.SectionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	course, resp, ok := findCourse(c, paramID(c, "id"), false)
	if !ok {
		return resp
	}

	var count int64
	database.Database.Db.Model(&courseModels.Section{}).Where("course_id = ?", course.ID).Count(&count)

	section := courseModels.Section{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  int(count),
	}
	if err := database.Database.Db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section.ToDTO())
}

func UpdateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*dto.SectionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	section, resp, ok := findSection(c, paramID(c, "id"), paramID(c, "sectionId"))
	if !ok {
		return resp
	}

	section.Title = reqData.Title
	section.Description = reqData.Description
	if err := database.Database.Db.Omit("Modules").Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section.ToDTO())
}

// DeleteSection removes the section and its modules.
func DeleteSection(c *fiber.Ctx) error {
	section, resp, ok := findSection(c, paramID(c, "id"), paramID(c, "sectionId"))
	if !ok {
		return resp
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", section.ID).Delete(&courseModels.Module{}).Error; err != nil {
			return err
		}
		return tx.Delete(&courseModels.Section{}, section.ID).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}
