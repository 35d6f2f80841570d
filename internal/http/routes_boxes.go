package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/middleware"
)

// BoxRoutes registers the box, label, export, bundle, event and log routes.
type BoxRoutes struct {
	handler *Handler
}

// NewBoxRoutes creates a new BoxRoutes instance.
func NewBoxRoutes(handler *Handler) *BoxRoutes {
	return &BoxRoutes{handler: handler}
}

// RegisterRoutes registers every route on rg except the exports, which
// RegisterExportRoutes mounts behind their own authentication.
func (r *BoxRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	h := r.handler

	boxes := rg.Group("/boxes")
	{
		boxes.GET("", h.ListBoxes)
		boxes.POST("", h.CreateBox)
		boxes.POST("/quick", h.QuickCreateBox)
		boxes.GET("/:id", h.GetBox)
		boxes.PATCH("/:id", h.UpdateBox)
		boxes.DELETE("/:id", h.DeleteBox)
		boxes.POST("/:id/items", h.AddItems)
		boxes.PATCH("/:id/items", h.UpdateItem)
		boxes.DELETE("/:id/items", h.DeleteItem)
		boxes.GET("/:id/activity", h.BoxActivity)
	}

	rg.POST("/scan", h.Scan)
	rg.GET("/search", h.Search)
	rg.GET("/room-codes/suggest", h.SuggestRoomCode)

	rg.GET("/label-sizes", h.ListLabelSizes)
	rg.POST("/label-sizes", h.CreateLabelSize)
	rg.GET("/templates", h.ListTemplates)
	rg.POST("/labels/preview", h.PreviewLabel)

	rg.GET("/bundles", h.ListBundles)
	rg.POST("/bundles", h.UpsertBundle)
	rg.POST("/events", h.RecordEvent)
	rg.GET("/logs", h.ListLogs)
}

// RegisterExportRoutes registers the export routes under rg. Exports share a
// stricter per-client limiter because rendering is the expensive path.
func (r *BoxRoutes) RegisterExportRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	h := r.handler

	exports := rg.Group("/exports")
	if cfg != nil && cfg.ExportRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.ExportRateLimit, cfg.RateWindow)
		exports.Use(limiter.UserRateLimit())
	}
	{
		exports.POST("/pdf", h.ExportPDF)
		exports.POST("/png", h.ExportPNG)
		exports.GET("/png", h.PreviewPNG)
		exports.POST("/csv", h.ExportCSV)
		exports.GET("/label/:id", h.BoxLabel)
		exports.GET("/master-index", h.MasterIndex)
		exports.GET("/insurance", h.Insurance)
		exports.GET("/providers", h.ListProviders)
	}
}
