package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"lms/database"
	"lms/dto"
	"lms/middleware"
	courseModels "lms/models/course"
)

// DashboardStats returns content counts and this week's grading workload.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db
	week := now.With(time.Now())
	start, end := week.BeginningOfWeek(), week.EndOfWeek()

	var stats dto.DashboardStats
	counts := []struct {
		dest  *int64
		model interface{}
		where string
		args  []interface{}
	}{
		{&stats.Courses, &courseModels.Course{}, "", nil},
		{&stats.PublicCourses, &courseModels.Course{}, "is_public = ?", []interface{}{true}},
		{&stats.Sections, &courseModels.Section{}, "", nil},
		{&stats.Modules, &courseModels.Module{}, "", nil},
		{&stats.Assignments, &courseModels.Assignment{}, "", nil},
		{&stats.UngradedSubmissions, &courseModels.Submission{}, "grade IS NULL", nil},
		{&stats.SubmissionsThisWeek, &courseModels.Submission{}, "created_at BETWEEN ? AND ?", []interface{}{start, end}},
		{&stats.AssignmentsDueThisWeek, &courseModels.Assignment{}, "due_date BETWEEN ? AND ?", []interface{}{start, end}},
	}
	for _, q := range counts {
		tx := db.Model(q.model)
		if q.where != "" {
			tx = tx.Where(q.where, q.args...)
		}
		if err := tx.Count(q.dest).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
