package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "vocabapi/docs"
	"vocabapi/internal/http/middleware"
	"vocabapi/internal/service"
)

// APIPrefix mirrors every resource route under a versioned path.
const APIPrefix = "/api/v1"

// Services bundles what the HTTP layer depends on.
type Services struct {
	Identity    service.IdentityService
	Folders     service.FolderService
	Words       service.WordService
	Images      service.ImageService
	Assignments service.AssignmentService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Resource routes are
// mounted at the root and again under APIPrefix; operational routes only at the root.
func RegisterRoutes(app *fiber.App, db Pinger, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	// docs.SwaggerInfo leaves host empty so the UI targets whichever origin served it
	app.Get("/swagger/*", swagger.HandlerDefault)

	registerResources(app, svcs)
	registerResources(app.Group(APIPrefix), svcs)
}

func registerResources(r fiber.Router, svcs Services) {
	id := middleware.Identity(svcs.Identity)

	r.Get("/me", id, CurrentUser())

	r.Get("/folders", id, ListFolders(svcs.Folders))
	r.Post("/folders", id, CreateFolder(svcs.Folders))
	r.Get("/folders/:id", id, GetFolder(svcs.Folders))
	r.Put("/folders/:id", id, UpdateFolder(svcs.Folders))
	r.Delete("/folders/:id", id, DeleteFolder(svcs.Folders))

	r.Post("/words", CreateWord(svcs.Words))
	r.Get("/words/:businessId", GetWord(svcs.Words))
	r.Put("/words/:businessId", UpdateWord(svcs.Words))
	r.Post("/words/:businessId/image", UploadImage(svcs.Images))
	r.Get("/words/:businessId/image", FetchImage(svcs.Images))
	r.Delete("/words/:businessId/image", DeleteImage(svcs.Images))

	r.Post("/users/:userId/folders/:folderId/words", id, AssignWord(svcs.Assignments))
	r.Get("/users/:userId/folders/:folderId/words", id, ListAssignments(svcs.Assignments))
	r.Delete("/users/:userId/folders/:folderId/words/:businessId", id, RemoveAssignment(svcs.Assignments))
}
