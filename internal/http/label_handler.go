package http

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/label"
)

// ListLabelSizes handles GET /api/v1/label-sizes.
//
// @Summary      List label sizes
// @Description  Lists the label stock catalogue. Built-in presets are served while the database is unavailable.
// @Tags         Labels
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.LabelSize}
// @Security     SessionCookie
// @Router       /api/v1/label-sizes [get]
func (h *Handler) ListLabelSizes(c *gin.Context) {
	sizes, err := h.sizes.List(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(sizes)
}

// CreateLabelSize handles POST /api/v1/label-sizes.
//
// @Summary      Create label size
// @Description  Adds a custom label stock. The id is derived from the name.
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Param        request body dto.LabelSizeRequest true "Label geometry in millimetres"
// @Success      201 {object} dto.SuccessResponse{data=model.LabelSize}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "A size with this name exists"
// @Security     SessionCookie
// @Router       /api/v1/label-sizes [post]
func (h *Handler) CreateLabelSize(c *gin.Context) {
	req, ok := bind[dto.LabelSizeRequest](c)
	if !ok {
		return
	}
	size, err := h.sizes.Create(c.Request.Context(), *req)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(size)
}

// PreviewLabel handles POST /api/v1/labels/preview.
//
// @Summary      Preview label layout
// @Description  Solves the layout of one label for a stored size or an ad-hoc geometry, including the layout strategy and its warnings.
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Param        request body dto.PreviewRequest true "Size, template and label data"
// @Success      200 {object} dto.SuccessResponse{data=dto.PreviewResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/labels/preview [post]
func (h *Handler) PreviewLabel(c *gin.Context) {
	req, ok := bind[dto.PreviewRequest](c)
	if !ok {
		return
	}
	preview, err := h.labels.Preview(c.Request.Context(), *req)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(preview)
}

// ListTemplates handles GET /api/v1/templates.
//
// @Summary      List label templates
// @Tags         Labels
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.TemplateInfo}
// @Router       /api/v1/templates [get]
func (h *Handler) ListTemplates(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(lo.Map(label.Templates(), func(t label.Template, _ int) dto.TemplateInfo {
		return dto.TemplateInfo{Key: string(t), DisplayName: t.DisplayName()}
	}))
}
