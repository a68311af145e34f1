package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vocabapi/internal/http/middleware"
	"vocabapi/internal/model"
	"vocabapi/internal/service"
)

// ListFolders godoc
// @Summary List the current user's folders, newest first
// @Tags folders
// @Param limit query int false "page size (1-1000, default 100)"
// @Param skip query int false "items to skip"
// @Success 200 {object} successPayload
// @Failure 400 {object} errorPayload
// @Router /folders [get]
func ListFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pp, err := pageParams(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		u := middleware.UserFromCtx(c)
		items, err := svc.List(c.UserContext(), u.ID, pp)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toFolderResponses(items), "folders retrieved")
	}
}

// GetFolder godoc
// @Summary Get a folder by id
// @Tags folders
// @Param id path string true "folder id"
// @Success 200 {object} successPayload
// @Failure 400,404 {object} errorPayload
// @Router /folders/{id} [get]
func GetFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := middleware.UserFromCtx(c)
		f, err := svc.Get(c.UserContext(), u.ID, c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toFolderResponse(*f), "folder retrieved")
	}
}

// CreateFolder godoc
// @Summary Create a folder
// @Tags folders
// @Accept json
// @Param body body model.FolderInput true "folder"
// @Success 200 {object} successPayload
// @Failure 400 {object} errorPayload
// @Router /folders [post]
func CreateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.FolderInput
		if err := decodeJSON(c, &in); err != nil {
			return writeServiceError(c, err)
		}
		u := middleware.UserFromCtx(c)
		f, err := svc.Create(c.UserContext(), u.ID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toFolderResponse(*f), "folder created")
	}
}

// UpdateFolder godoc
// @Summary Update the fields present in the body
// @Tags folders
// @Accept json
// @Param id path string true "folder id"
// @Success 200 {object} successPayload
// @Failure 400,404 {object} errorPayload
// @Router /folders/{id} [put]
func UpdateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.FolderPatch
		if err := decodeJSON(c, &patch); err != nil {
			return writeServiceError(c, err)
		}
		u := middleware.UserFromCtx(c)
		f, err := svc.Update(c.UserContext(), u.ID, c.Params("id"), patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toFolderResponse(*f), "folder updated")
	}
}

// DeleteFolder godoc
// @Summary Delete a folder
// @Description Assignments are kept unless cascade=true.
// @Tags folders
// @Param id path string true "folder id"
// @Param cascade query bool false "also remove the folder's assignments"
// @Success 200 {object} successPayload
// @Failure 400,404 {object} errorPayload
// @Router /folders/{id} [delete]
func DeleteFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cascade := false
		if raw := c.Query("cascade"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return writeFieldError(c, fiber.StatusBadRequest, service.CodeValidation, "cascade must be a boolean", "cascade")
			}
			cascade = v
		}
		u := middleware.UserFromCtx(c)
		id := c.Params("id")
		removed, err := svc.Delete(c.UserContext(), u.ID, id, cascade)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, FolderDeleteResponse{
			ID:                 id,
			Cascade:            cascade,
			AssignmentsRemoved: removed,
		}, "folder deleted")
	}
}
