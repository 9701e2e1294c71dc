package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lms/database"
	"lms/dto"
	"lms/middleware"
	courseModels "lms/models/course"
)

func paramID(c *fiber.Ctx, name string) uint {
	id, _ := c.Locals(name).(uint)
	return id
}

// findCourse loads a course or writes the 404 response; ok is false when
// the handler should return resp.
func findCourse(c *fiber.Ctx, id uint, preload bool) (course courseModels.Course, resp error, ok bool) {
	q := database.Database.Db
	if preload {
		q = q.Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index, id")
		}).Preload("Sections.Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index, id")
		}).Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
	}
	err := q.First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return course, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil), false
	}
	if err != nil {
		return course, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil), false
	}
	return course, nil, true
}

// ListCourses returns courses newest first; ?public=true limits the list
// to published courses.
func ListCourses(c *fiber.Ctx) error {
	q := database.Database.Db.Order("id desc")
	if c.Query("public") == "true" {
		q = q.Where("is_public = ?", true)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category = ?", category)
	}

	var courses []courseModels.Course
	if err := q.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	out := make([]dto.Course, 0, len(courses))
	for _, course := range courses {
		out = append(out, course.ToDTO())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", out)
}

func GetCourse(c *fiber.Ctx) error {
	course, resp, ok := findCourse(c, paramID(c, "id"), true)
	if !ok {
		return resp
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course.ToDTO())
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*dto.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	stampProject(reqData.Project, nil)
	project, err := courseModels.EncodeJSON(reqData.Project)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project!", nil)
	}
	course := courseModels.Course{
		Title:            reqData.Title,
		Description:      reqData.Description,
		Category:         string(reqData.Category),
		Level:            string(reqData.Level),
		InstructorName:   reqData.Instructor.Name,
		InstructorAvatar: reqData.Instructor.Avatar,
		Thumbnail:        reqData.Thumbnail,
		PromoVideo:       reqData.PromoVideo,
		IsPublic:         reqData.IsPublic,
		Project:          project,
		CreatedBy:        middleware.UserID(c),
	}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course.ToDTO())
}

// stampProject gives a project without an ID the one it replaces, or a new
// one. Project submissions reference that ID.
func stampProject(p, previous *dto.Assignment) {
	if p == nil || p.ID != "" {
		return
	}
	if previous != nil && previous.ID != "" {
		p.ID = previous.ID
		return
	}
	p.ID = uuid.NewString()
}

// UpdateCourse applies the fields present in the body. An explicit
// "project": null removes the project.
func UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseUpdate").(*dto.CourseUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	course, resp, ok := findCourse(c, paramID(c, "id"), false)
	if !ok {
		return resp
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = strings.TrimSpace(*reqData.Description)
	}
	if reqData.Category != nil {
		course.Category = string(*reqData.Category)
	}
	if reqData.Level != nil {
		course.Level = string(*reqData.Level)
	}
	if reqData.Instructor != nil {
		course.InstructorName = reqData.Instructor.Name
		course.InstructorAvatar = reqData.Instructor.Avatar
	}
	if reqData.Thumbnail != nil {
		course.Thumbnail = *reqData.Thumbnail
	}
	if reqData.PromoVideo != nil {
		course.PromoVideo = *reqData.PromoVideo
	}
	if reqData.IsPublic != nil {
		course.IsPublic = *reqData.IsPublic
	}
	if reqData.ProjectSet {
		if reqData.Project != nil {
			reqData.Project.CourseID = ""
			stampProject(reqData.Project, course.ProjectDTO())
		}
		project, err := courseModels.EncodeJSON(reqData.Project)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid project!", nil)
		}
		course.Project = project
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course.ToDTO())
}

// DeleteCourse removes the course together with everything it owns.
func DeleteCourse(c *fiber.Ctx) error {
	course, resp, ok := findCourse(c, paramID(c, "id"), false)
	if !ok {
		return resp
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		sectionIDs := tx.Model(&courseModels.Section{}).Select("id").Where("course_id = ?", course.ID)
		if err := tx.Where("section_id IN (?)", sectionIDs).Delete(&courseModels.Module{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&courseModels.Section{}).Error; err != nil {
			return err
		}
		assignmentIDs := tx.Model(&courseModels.Assignment{}).Select("id").Where("course_id = ?", course.ID)
		if err := tx.Where("course_id = ? OR assignment_id IN (?)", course.ID, assignmentIDs).Delete(&courseModels.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&courseModels.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
