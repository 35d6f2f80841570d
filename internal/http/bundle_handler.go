package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/middleware"
)

// ListBundles handles GET /api/v1/bundles.
//
// @Summary      List bundles
// @Description  Lists the reusable item bundles, for example "Bathroom basics".
// @Tags         Bundles
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Bundle}
// @Security     SessionCookie
// @Router       /api/v1/bundles [get]
func (h *Handler) ListBundles(c *gin.Context) {
	bundles, err := h.bundles.List(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(bundles)
}

// UpsertBundle handles POST /api/v1/bundles.
//
// @Summary      Save bundle
// @Description  Creates a bundle, or replaces the items of the bundle with the same name.
// @Tags         Bundles
// @Accept       json
// @Produce      json
// @Param        request body dto.BundleRequest true "Bundle"
// @Success      200 {object} dto.SuccessResponse{data=model.Bundle}
// @Failure      400 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/bundles [post]
func (h *Handler) UpsertBundle(c *gin.Context) {
	req, ok := bind[dto.BundleRequest](c)
	if !ok {
		return
	}
	bundle, err := h.bundles.Upsert(c.Request.Context(), *req)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(bundle)
}

// RecordEvent handles POST /api/v1/events.
//
// Client analytics must never break the UI, so every outcome is a 204.
//
// @Summary      Record client event
// @Tags         Events
// @Accept       json
// @Param        request body dto.EventRequest true "Event"
// @Success      204
// @Security     SessionCookie
// @Router       /api/v1/events [post]
func (h *Handler) RecordEvent(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err == nil && strings.TrimSpace(req.Action) != "" {
		middleware.AuditLog(h.activity, c, req.Action, req.BoxID, req.Details)
	}
	c.Status(http.StatusNoContent)
}
