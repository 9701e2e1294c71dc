package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/database"
	"lms/dto"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
)

// findProject loads the project embedded on a course. A course without one
// answers 404.
func findProject(c *fiber.Ctx, courseID uint) (course courseModels.Course, project *dto.Assignment, resp error, ok bool) {
	course, resp, ok = findCourse(c, courseID, false)
	if !ok {
		return course, nil, resp, false
	}
	project = course.ProjectDTO()
	if project == nil || project.ID == "" {
		return course, nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "No project found for this course!", nil), false
	}
	return course, project, nil, true
}

// listSubmissions runs q (already scoped to one assignment or project) and
// writes the response, oldest first.
func listSubmissions(c *fiber.Ctx, q *gorm.DB) error {
	q = q.Order("id")
	role, _ := c.Locals("role").(string)
	if role != models.RoleAdmin && role != models.RoleInstructor {
		// Learners only see their own work
		q = q.Where("user_id = ?", middleware.UserID(c))
	}

	var submissions []courseModels.Submission
	if err := q.Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}
	out := make([]dto.Submission, 0, len(submissions))
	for _, s := range submissions {
		out = append(out, s.ToDTO())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", out)
}

// ListSubmissions returns an assignment's submissions.
func ListSubmissions(c *fiber.Ctx) error {
	assignment, resp, ok := findAssignment(c, paramID(c, "id"))
	if !ok {
		return resp
	}
	return listSubmissions(c, database.Database.Db.Where("assignment_id = ?", assignment.ID))
}

// ListProjectSubmissions returns the submissions to a course's current project.
func ListProjectSubmissions(c *fiber.Ctx) error {
	course, project, resp, ok := findProject(c, paramID(c, "id"))
	if !ok {
		return resp
	}
	return listSubmissions(c, database.Database.Db.Where("course_id = ? AND project_id = ?", course.ID, project.ID))
}

// storeSubmission records reqData against submission's target. The
// submission type must be one of accepted.
func storeSubmission(c *fiber.Ctx, reqData *dto.Submission, accepted []dto.SubmissionType, submission courseModels.Submission) error {
	allowed := false
	for _, t := range accepted {
		if t == reqData.SubmissionType {
			allowed = true
		}
	}
	if !allowed {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"submissionType": "This assignment does not accept " + string(reqData.SubmissionType) + " submissions!",
		})
	}

	// Keep only the answer matching the submission type
	submission.UserID = middleware.UserID(c)
	submission.SubmissionType = string(reqData.SubmissionType)
	switch reqData.SubmissionType {
	case dto.SubmissionText:
		submission.Text = reqData.Text
	case dto.SubmissionLink:
		submission.Link = reqData.Link
	case dto.SubmissionFileUpload:
		submission.FileURL = reqData.File.URL
		submission.FileName = reqData.File.Name
		submission.FileType = reqData.File.Type
		submission.FileSize = reqData.File.Size
	}
	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Submitted successfully!", submission.ToDTO())
}

// CreateSubmission records a learner's answer to an assignment.
func CreateSubmission(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubmission").(*dto.Submission)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	assignment, resp, ok := findAssignment(c, paramID(c, "id"))
	if !ok {
		return resp
	}
	return storeSubmission(c, reqData, assignment.ToDTO().SubmissionTypes, courseModels.Submission{
		AssignmentID: &assignment.ID,
		CourseID:     assignment.CourseID,
	})
}

// CreateProjectSubmission records a learner's answer to the course project.
func CreateProjectSubmission(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubmission").(*dto.Submission)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	course, project, resp, ok := findProject(c, paramID(c, "id"))
	if !ok {
		return resp
	}
	return storeSubmission(c, reqData, project.SubmissionTypes, courseModels.Submission{
		CourseID:  course.ID,
		ProjectID: project.ID,
	})
}

// GradeSubmission stores a grade within 0..maxPoints of the assignment or
// project the submission answers.
func GradeSubmission(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGrade").(*dto.GradeInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var submission courseModels.Submission
	err := database.Database.Db.First(&submission, paramID(c, "id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submission!", nil)
	}

	// Resolve the grading scale from what the submission answers
	var maxPoints float64
	switch {
	case submission.ProjectID != "":
		_, project, resp, ok := findProject(c, submission.CourseID)
		if !ok {
			return resp
		}
		if project.ID != submission.ProjectID {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
		}
		maxPoints = project.EffectiveMaxPoints()
	case submission.AssignmentID != nil:
		assignment, resp, ok := findAssignment(c, *submission.AssignmentID)
		if !ok {
			return resp
		}
		maxPoints = assignment.ToDTO().EffectiveMaxPoints()
	default:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}
	if reqData.Grade > maxPoints {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"grade": fmt.Sprintf("Grade must be between 0 and %g!", maxPoints),
		})
	}

	grade := reqData.Grade
	now := time.Now()
	submission.Grade = &grade
	submission.Feedback = reqData.Feedback
	submission.GradedAt = &now
	submission.GradedBy = middleware.UserID(c)
	if err := database.Database.Db.Save(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save grade!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission.ToDTO())
}
