package controllers

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"lms/dto"
	"lms/middleware"
	"lms/storage"
)

// Storage receives uploaded files; main wires it from config.
var Storage storage.Store

var uploadDirs = map[dto.UploadCategory]string{
	dto.UploadImage:    "images",
	dto.UploadVideo:    "videos",
	dto.UploadDocument: "documents",
	dto.UploadMaterial: "materials",
}

// resourceType classifies a MIME type as image, video or raw.
func resourceType(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return "image"
	case strings.HasPrefix(mime, "video/"):
		return "video"
	default:
		return "raw"
	}
}

// Upload stores the multipart "file" field under the category's folder.
// The content is sniffed; image and video categories reject other kinds.
func Upload(c *fiber.Ctx) error {
	category, _ := c.Locals("uploadCategory").(dto.UploadCategory)
	header, err := c.FormFile("file")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "File is required!"})
	}

	src, err := header.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read file!", nil)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read file!", nil)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}

	kind := resourceType(mtype.String())
	if (category == dto.UploadImage && kind != "image") || (category == dto.UploadVideo && kind != "video") {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"file": "Expected a " + string(category) + " file, got " + mtype.String() + "!",
		})
	}

	url, err := Storage.Put(c.UserContext(), storage.Object{
		Key:         storage.ObjectKey(uploadDirs[category], header.Filename),
		ContentType: mtype.String(),
		Size:        header.Size,
		Body:        src,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", dto.UploadResult{
		URL:  url,
		Name: header.Filename,
		Type: kind,
	})
}
