package handler

import (
	"github.com/gofiber/fiber/v2"

	"vocabapi/internal/http/middleware"
	"vocabapi/internal/model"
	"vocabapi/internal/service"
)

// actingUser returns the resolved user when the :userId path segment refers to them
// ("me", their id or their email). Any other reference is answered with 404 so other
// users' data is indistinguishable from missing data.
func actingUser(c *fiber.Ctx) (*model.User, bool) {
	u := middleware.UserFromCtx(c)
	if !service.MatchesUser(u, c.Params("userId")) {
		_ = writeServiceError(c, service.ErrUserNotFound)
		return nil, false
	}
	return u, true
}

// AssignWord godoc
// @Summary Place a dictionary word in a folder
// @Tags assignments
// @Accept json
// @Param userId path string true "user id, email or me"
// @Param folderId path string true "folder id"
// @Param body body model.AssignmentInput true "word reference"
// @Success 200 {object} successPayload
// @Failure 400,404,409 {object} errorPayload
// @Router /users/{userId}/folders/{folderId}/words [post]
func AssignWord(svc service.AssignmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := actingUser(c)
		if !ok {
			return nil
		}
		var in model.AssignmentInput
		if err := decodeJSON(c, &in); err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Add(c.UserContext(), u.ID, c.Params("folderId"), in.WordID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toAssignmentResponse(*a), "word assigned to folder")
	}
}

// ListAssignments godoc
// @Summary List the words in a folder by headword
// @Tags assignments
// @Param userId path string true "user id, email or me"
// @Param folderId path string true "folder id"
// @Param limit query int false "page size (1-1000, default 100)"
// @Param skip query int false "items to skip"
// @Success 200 {object} successPayload
// @Failure 400,404 {object} errorPayload
// @Router /users/{userId}/folders/{folderId}/words [get]
func ListAssignments(svc service.AssignmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := actingUser(c)
		if !ok {
			return nil
		}
		pp, err := pageParams(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		items, err := svc.List(c.UserContext(), u.ID, c.Params("folderId"), pp)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, toAssignmentResponses(items), "folder words retrieved")
	}
}

// RemoveAssignment godoc
// @Summary Take a word out of a folder
// @Tags assignments
// @Param userId path string true "user id, email or me"
// @Param folderId path string true "folder id"
// @Param businessId path string true "business id"
// @Success 200 {object} successPayload
// @Failure 400,404 {object} errorPayload
// @Router /users/{userId}/folders/{folderId}/words/{businessId} [delete]
func RemoveAssignment(svc service.AssignmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := actingUser(c)
		if !ok {
			return nil
		}
		folderID, wordID := c.Params("folderId"), c.Params("businessId")
		if err := svc.Remove(c.UserContext(), u.ID, folderID, wordID); err != nil {
			return writeServiceError(c, err)
		}
		return writeSuccess(c, fiber.Map{"folder_id": folderID, "word_id": wordID}, "word removed from folder")
	}
}
