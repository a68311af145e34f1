package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vocabapi/internal/service"
)

// UploadImage godoc
// @Summary Attach an image to a word, replacing any previous one
// @Tags images
// @Accept multipart/form-data
// @Param businessId path string true "business id"
// @Param image formData file true "jpeg, png or webp"
// @Success 200 {object} successPayload
// @Failure 400,404,413 {object} errorPayload
// @Router /words/{businessId}/image [post]
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := formImage(c)
		if err != nil {
			return writeFieldError(c, fiber.StatusBadRequest, service.CodeValidation, "image file is required", "image")
		}

		f, err := fh.Open()
		if err != nil {
			return writeFieldError(c, fiber.StatusBadRequest, service.CodeValidation, "cannot open uploaded file", "image")
		}
		defer f.Close()

		ref, err := svc.Upload(c.UserContext(), c.Params("businessId"), service.ImageUpload{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toImageResponse(*ref), "image uploaded")
	}
}

// formImage accepts the file under "image" or, failing that, "file".
func formImage(c *fiber.Ctx) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("image")
	if err == nil {
		return fh, nil
	}
	return c.FormFile("file")
}

// FetchImage godoc
// @Summary Stream a word's image
// @Tags images
// @Produce image/jpeg,image/png,image/webp
// @Param businessId path string true "business id"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /words/{businessId}/image [get]
func FetchImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Fetch(c.UserContext(), c.Params("businessId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
		}
		size := -1
		if info.Size > 0 {
			size = int(info.Size)
		}
		// fasthttp closes rc once the body has been written.
		return c.Status(fiber.StatusOK).SendStream(rc, size)
	}
}

// DeleteImage godoc
// @Summary Remove a word's image
// @Tags images
// @Param businessId path string true "business id"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /words/{businessId}/image [delete]
func DeleteImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("businessId")
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, fiber.Map{"word_id": id}, "image deleted")
	}
}
