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

func findModule(c *fiber.Ctx, sectionID, moduleID uint) (module courseModels.Module, resp error, ok bool) {
	err := database.Database.Db.Where("id = ? AND section_id = ?", moduleID, sectionID).First(&module).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return module, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil), false
	}
	if err != nil {
		return module, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil), false
	}
	return module, nil, true
}

func ListModules(c *fiber.Ctx) error {
	section, resp, ok := findSection(c, paramID(c, "id"), paramID(c, "sectionId"))
	if !ok {
		return resp
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", section.ToDTO().Modules)
}

func GetModule(c *fiber.Ctx) error {
	section, resp, ok := findSection(c, paramID(c, "id"), paramID(c, "sectionId"))
	if !ok {
		return resp
	}
	module, resp, ok := findModule(c, section.ID, paramID(c, "moduleId"))
	if !ok {
		return resp
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module.ToDTO())
}

// CreateModule appends a module to the section. The content URL is stored
// exactly as sent.
func CreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*dto.ModuleInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	section, resp, ok := findSection(c, paramID(c, "id"), paramID(c, "sectionId"))
	if !ok {
		return resp
	}

	module := courseModels.Module{SectionID: section.ID, OrderIndex: len(section.Modules)}
	if err := module.ApplyInput(*reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module!", nil)
	}
	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module.ToDTO())
}

func UpdateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*dto.ModuleInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	section, resp, ok := findSection(c, paramID(c, "id"), paramID(c, "sectionId"))
	if !ok {
		return resp
	}
	module, resp, ok := findModule(c, section.ID, paramID(c, "moduleId"))
	if !ok {
		return resp
	}

	if err := module.ApplyInput(*reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module!", nil)
	}
	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module.ToDTO())
}

func DeleteModule(c *fiber.Ctx) error {
	section, resp, ok := findSection(c, paramID(c, "id"), paramID(c, "sectionId"))
	if !ok {
		return resp
	}
	module, resp, ok := findModule(c, section.ID, paramID(c, "moduleId"))
	if !ok {
		return resp
	}
	if err := database.Database.Db.Delete(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
