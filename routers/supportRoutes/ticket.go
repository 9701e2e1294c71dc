package supportRoutes

import (
	"github.com/gofiber/fiber/v2"

	controller "lms/controllers/support"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
	validator "lms/validators/support"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/support", middleware.JWTMiddleware)
	staff := middleware.RequireRole(models.RoleInstructor, models.RoleAdmin)

	support.Post("/", validator.CreateSupportTicket(), controller.CreateSupportTicket)
	support.Get("/", validator.TicketList(), controller.TicketList)
	support.Get("/admin", staff, validator.TicketList(), controller.AdminTicketList)
	support.Get("/admin/stats", staff, controller.AdminSupportStats)
	support.Post("/:id/reply", courseValidator.ParamID("id"), validator.ReplyTicket(), controller.ReplyTicket)
	support.Post("/:id/close", courseValidator.ParamID("id"), controller.CloseTicket)
}
