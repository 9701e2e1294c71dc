package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"
)

// SetupCourseRoutes registers the course authoring API. Reads are public;
// writes need a bearer token and, for authoring, an instructor or admin role.
func SetupCourseRoutes(app *fiber.App) {
	staff := middleware.RequireRole(models.RoleInstructor, models.RoleAdmin)
	auth := middleware.JWTMiddleware

	app.Post("/uploads/:category", auth, validators.UploadCategory(), controllers.Upload)

	courses := app.Group("/courses")
	courses.Get("/", controllers.ListCourses)
	courses.Post("/", auth, staff, validators.CreateCourse(), controllers.CreateCourse)
	courses.Get("/:id", validators.ParamID("id"), controllers.GetCourse)
	courses.Put("/:id", auth, staff, validators.ParamID("id"), validators.UpdateCourse(), controllers.UpdateCourse)
	courses.Delete("/:id", auth, staff, validators.ParamID("id"), controllers.DeleteCourse)

	// Sections
	courses.Get("/:id/sections", validators.ParamID("id"), controllers.ListSections)
	courses.Post("/:id/sections", auth, staff, validators.ParamID("id"), validators.Section(), controllers.CreateSection)
	courses.Put("/:id/sections/:sectionId", auth, staff, validators.ParamID("id", "sectionId"), validators.Section(), controllers.UpdateSection)
	courses.Delete("/:id/sections/:sectionId", auth, staff, validators.ParamID("id", "sectionId"), controllers.DeleteSection)

	// Modules
	modules := courses.Group("/:id/sections/:sectionId/modules")
	modules.Get("/", validators.ParamID("id", "sectionId"), controllers.ListModules)
	modules.Post("/", auth, staff, validators.ParamID("id", "sectionId"), validators.Module(), controllers.CreateModule)
	modules.Get("/:moduleId", validators.ParamID("id", "sectionId", "moduleId"), controllers.GetModule)
	modules.Put("/:moduleId", auth, staff, validators.ParamID("id", "sectionId", "moduleId"), validators.Module(), controllers.UpdateModule)
	modules.Delete("/:moduleId", auth, staff, validators.ParamID("id", "sectionId", "moduleId"), controllers.DeleteModule)

	// Assignments
	courses.Get("/:id/assignments", validators.ParamID("id"), controllers.ListAssignments)
	courses.Post("/:id/assignments", auth, staff, validators.ParamID("id"), validators.Assignment(), controllers.CreateAssignment)
	courses.Put("/:id/assignments/:assignmentId", auth, staff, validators.ParamID("id", "assignmentId"), validators.Assignment(), controllers.UpdateAssignment)
	courses.Delete("/:id/assignments/:assignmentId", auth, staff, validators.ParamID("id", "assignmentId"), controllers.DeleteAssignment)

	// Submissions and grading
	app.Get("/assignments/:id/submissions", auth, validators.ParamID("id"), controllers.ListSubmissions)
	app.Post("/assignments/:id/submissions", auth, validators.ParamID("id"), validators.Submission(), controllers.CreateSubmission)
	courses.Get("/:id/project/submissions", auth, validators.ParamID("id"), controllers.ListProjectSubmissions)
	courses.Post("/:id/project/submissions", auth, validators.ParamID("id"), validators.Submission(), controllers.CreateProjectSubmission)
	app.Put("/submissions/:id/grade", auth, staff, validators.ParamID("id"), validators.Grade(), controllers.GradeSubmission)

	// Notifications and enrollment
	app.Post("/notifications", auth, staff, validators.Notification(), controllers.CreateNotification)
	enrollments := app.Group("/enrollments")
	enrollments.Post("/enroll-all/:courseId", auth, staff, validators.ParamID("courseId"), controllers.EnrollAll)
	enrollments.Post("/enroll-users/:courseId", auth, staff, validators.ParamID("courseId"), validators.EnrollUsers(), controllers.EnrollUsers)

	// Dashboard
	app.Get("/admin/dashboard/stats", auth, middleware.RequireRole(models.RoleAdmin), controllers.DashboardStats)
}
