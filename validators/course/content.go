package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/dto"
	"lms/middleware"
)

type sectionRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

// Section validates a section create or update
func Section() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.SectionInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if err := validate.Struct(sectionRequest(*reqData)); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

type moduleRequest struct {
	Title string          `json:"title" validate:"required,max=200"`
	Type  dto.ContentType `json:"type" validate:"required,oneof=video pdf quiz"`
}

// Module validates a module create or update
func Module() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.ModuleInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentURL = strings.TrimSpace(reqData.ContentURL)

		errors := fieldErrors(validate.Struct(moduleRequest{Title: reqData.Title, Type: reqData.Type}))

		switch reqData.Type {
		case dto.ContentVideo, dto.ContentPDF:
			if reqData.ContentURL == "" {
				errors["contentUrl"] = "Content URL is required!"
			}
			reqData.Quiz = nil
		case dto.ContentQuiz:
			reqData.ContentURL = ""
			if reqData.Quiz == nil {
				reqData.Quiz = &dto.Quiz{Questions: []dto.QuizQuestion{}}
			}
			for _, q := range reqData.Quiz.Questions {
				if len(q.Options) < 2 {
					errors["quiz.questions"] = "Each question needs at least 2 options!"
				}
				if q.CorrectAnswer != "" && !contains(q.Options, q.CorrectAnswer) {
					errors["quiz.questions"] = "Correct answer must match an option!"
				}
			}
		}
		if reqData.Survey != nil {
			for _, q := range reqData.Survey.Questions {
				if !q.Type.Valid() {
					errors["survey.questions"] = "Survey type must be text, rating or multiple-choice!"
				}
			}
			if len(reqData.Survey.Questions) == 0 {
				reqData.Survey = nil
			}
		}
		if reqData.Objectives == nil {
			reqData.Objectives = []string{}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func contains(values []string, v string) bool {
	for _, have := range values {
		if have == v {
			return true
		}
	}
	return false
}
