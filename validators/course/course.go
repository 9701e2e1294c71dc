package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/dto"
	"lms/middleware"
)

const categoryTag = "oneof=development business design marketing it-software personal-development photography music other"

type courseRequest struct {
	Title       string         `json:"title" validate:"required,min=3,max=200"`
	Description string         `json:"description"`
	Category    dto.Category   `json:"category" validate:"required,oneof=development business design marketing it-software personal-development photography music other"`
	Level       dto.Level      `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Instructor  dto.Instructor `json:"instructor"`
	Thumbnail   string         `json:"thumbnail"`
	PromoVideo  string         `json:"promoVideo"`
	IsPublic    bool           `json:"isPublic"`
}

// CreateCourse validates a new course
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.Course)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Instructor.Name = strings.TrimSpace(reqData.Instructor.Name)

		err := validate.Struct(courseRequest{
			Title:       reqData.Title,
			Description: reqData.Description,
			Category:    reqData.Category,
			Level:       reqData.Level,
		})
		if err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		if reqData.Project != nil {
			if errors := projectErrors(*reqData.Project); len(errors) > 0 {
				return middleware.ValidationErrorResponse(c, errors)
			}
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates a partial course update. Only present fields are
// checked; "project": null is a valid way to clear the project.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.CourseUpdate)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Title != nil {
			title := strings.TrimSpace(*reqData.Title)
			reqData.Title = &title
			if err := validate.Var(title, "required,min=3,max=200"); err != nil {
				errors["title"] = "Title must be at least 3 characters long!"
			}
		}
		if reqData.Category != nil {
			if err := validate.Var(string(*reqData.Category), categoryTag); err != nil {
				errors["category"] = "Category is invalid!"
			}
		}
		if reqData.Level != nil && !reqData.Level.Valid() {
			errors["level"] = "Level must be one of: beginner, intermediate, advanced!"
		}
		if reqData.ProjectSet && reqData.Project != nil {
			for k, v := range projectErrors(*reqData.Project) {
				errors[k] = v
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func projectErrors(p dto.Assignment) map[string]string {
	errors := assignmentErrors(p)
	out := make(map[string]string, len(errors))
	for k, v := range errors {
		out["project."+k] = v
	}
	return out
}
