package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/dto"
	"lms/middleware"
)

func assignmentErrors(a dto.Assignment) map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(a.Title) == "" {
		errors["title"] = "Title is required!"
	}
	if a.DueDate == nil {
		errors["dueDate"] = "Due date is required!"
	}
	if len(a.SubmissionTypes) == 0 {
		errors["submissionTypes"] = "Select at least 1 submission type!"
	}
	for _, t := range a.SubmissionTypes {
		if !t.Valid() {
			errors["submissionTypes"] = "Submission type must be text, file_upload or link!"
		}
	}
	if a.MaxPoints < 0 {
		errors["maxPoints"] = "Max points is out of range!"
	}
	return errors
}

// Assignment validates an assignment create or update
func Assignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.Assignment)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Instructions = strings.TrimSpace(reqData.Instructions)

		if errors := assignmentErrors(*reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

type submissionRequest struct {
	SubmissionType dto.SubmissionType `json:"submissionType" validate:"required,oneof=text file_upload link"`
	Text           string             `json:"text" validate:"required_if=SubmissionType text"`
	Link           string             `json:"link" validate:"required_if=SubmissionType link,omitempty,url"`
}

// Submission validates a learner submission
func Submission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.Submission)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Text = strings.TrimSpace(reqData.Text)
		reqData.Link = strings.TrimSpace(reqData.Link)

		errors := fieldErrors(validate.Struct(submissionRequest{
			SubmissionType: reqData.SubmissionType,
			Text:           reqData.Text,
			Link:           reqData.Link,
		}))
		if reqData.SubmissionType == dto.SubmissionFileUpload && (reqData.File == nil || reqData.File.URL == "") {
			errors["file"] = "File is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// Grade validates a grade; the upper bound depends on the assignment and
// is checked by the controller.
func Grade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.GradeInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Feedback = strings.TrimSpace(reqData.Feedback)
		if err := validate.Var(reqData.Grade, "gte=0"); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"grade": "Grade is out of range!"})
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
