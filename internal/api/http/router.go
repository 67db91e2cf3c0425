package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/http/handlers"
	"github.com/spec-kit/church-cms/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Admin          *handlers.AdminHandler
	Blogs          *handlers.BlogsHandler
	Ministries     *handlers.MinistriesHandler
	Bulletins      *handlers.BulletinsHandler
	Gallery        *handlers.GalleryHandler
	Resources      *handlers.ResourcesHandler
	Content        *handlers.ContentHandler
	Messages       *handlers.MessagesHandler
	Upload         *handlers.UploadHandler
	Weather        *handlers.WeatherHandler
	AuthMiddleware *auth.AuthMiddleware
	UploadsDir     string
}

// RegisterRoutes wires HTTP routes. Reads are public; writes sit behind the
// bearer-token middleware plus the admin role gate. The guard is attached
// per route rather than per group so public GETs on the same prefix stay open.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Static("/uploads", cfg.UploadsDir)

	api := app.Group("/api")
	guard := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireAdmin(), h}
	}

	api.Post("/admin/register", cfg.Admin.Register)
	api.Post("/admin/login", cfg.Admin.Login)

	api.Get("/blogs", cfg.Blogs.List)
	api.Get("/blogs/:slug", cfg.Blogs.Get)
	api.Post("/blogs", guard(cfg.Blogs.Create)...)
	api.Put("/blogs/:slug", guard(cfg.Blogs.Update)...)
	api.Delete("/blogs/:slug", guard(cfg.Blogs.Delete)...)

	api.Get("/ministries", cfg.Ministries.List)
	api.Post("/ministries", guard(cfg.Ministries.Create)...)
	api.Put("/ministries/:id", guard(cfg.Ministries.Update)...)
	api.Delete("/ministries/:id", guard(cfg.Ministries.Delete)...)

	api.Get("/bulletins", cfg.Bulletins.List)
	api.Post("/bulletins", guard(cfg.Bulletins.Create)...)
	api.Delete("/bulletins/:id", guard(cfg.Bulletins.Delete)...)

	api.Get("/gallery", cfg.Gallery.List)
	api.Post("/gallery", guard(cfg.Gallery.Upload)...)
	api.Delete("/gallery/:id", guard(cfg.Gallery.Delete)...)

	api.Get("/resources", cfg.Resources.List)
	api.Post("/resources", guard(cfg.Resources.Create)...)
	api.Put("/resources/:id", guard(cfg.Resources.Update)...)
	api.Delete("/resources/:id", guard(cfg.Resources.Delete)...)

	api.Get("/content", cfg.Content.List)
	api.Get("/content/:section", cfg.Content.Get)
	api.Put("/content/:section", guard(cfg.Content.Upsert)...)

	api.Post("/messages", cfg.Messages.Submit)
	api.Get("/messages", guard(cfg.Messages.Inbox)...)
	api.Put("/messages/:id/read", guard(cfg.Messages.MarkRead)...)
	api.Delete("/messages/:id", guard(cfg.Messages.Delete)...)

	api.Post("/upload", guard(cfg.Upload.Single)...)
	api.Post("/upload/multiple", guard(cfg.Upload.Multiple)...)
	api.Delete("/upload/:filename", guard(cfg.Upload.Delete)...)

	api.Get("/weather", cfg.Weather.Current)
	api.Get("/weather/forecast", cfg.Weather.Forecast)
}
