package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/export"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/label"
	"github.com/guttosm/move-labels/internal/render"
	"github.com/guttosm/move-labels/internal/service"
)

// WarningsHeader carries the layout compromises of a label export.
const WarningsHeader = "X-Label-Warnings"

// inventoryLabelSizeID is the stock used by the box page PNG preview.
var inventoryLabelSizeID = label.Slug("4x6 inch (inventory)")

// ExportPDF handles POST /api/v1/exports/pdf.
//
// @Summary      Export PDF labels
// @Description  Renders one page per label, or an Avery 5160 sheet with 30 labels per page.
// @Tags         Exports
// @Accept       json
// @Produce      application/pdf
// @Param        request body dto.ExportRequest true "Boxes, size, template and provider"
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse "Label size or boxes not found"
// @Failure      429 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/exports/pdf [post]
func (h *Handler) ExportPDF(c *gin.Context) {
	h.exportLabels(c, service.FormatPDF)
}

// ExportPNG handles POST /api/v1/exports/png.
//
// @Summary      Export PNG labels
// @Description  Renders one PNG for a single box, or a ZIP archive with one PNG per box.
// @Tags         Exports
// @Accept       json
// @Produce      image/png
// @Produce      application/zip
// @Param        request body dto.ExportRequest true "Boxes, size, template, DPI and provider"
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/exports/png [post]
func (h *Handler) ExportPNG(c *gin.Context) {
	h.exportLabels(c, service.FormatPNG)
}

func (h *Handler) exportLabels(c *gin.Context, format string) {
	req, ok := bind[dto.ExportRequest](c)
	if !ok {
		return
	}

	result, err := h.labels.Export(c.Request.Context(), service.ExportInput{
		Format:      format,
		BoxIDs:      req.BoxIDs,
		LabelSizeID: req.LabelSizeID,
		Template:    lo.CoalesceOrEmpty(req.Template, h.exportTemplate),
		DPI:         lo.CoalesceOrEmpty(req.DPI, h.exportDPI),
		Provider:    req.Provider,
		BaseURL:     h.baseURL.Resolve(c),
	})
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}

	ext := format
	if result.ContentType == render.ContentTypeZIP {
		ext = "zip"
	}
	setWarnings(c, result.Warnings)
	c.Header("Cache-Control", "no-store, must-revalidate")
	sendFile(c, result.ContentType, attachment(stampedName("labels", ext)), result.Data)
}

// PreviewPNG handles GET /api/v1/exports/png.
//
// @Summary      Box label image
// @Description  Renders the PNG label of one box for display. Defaults to the 4x6 inventory size at 96 DPI.
// @Tags         Exports
// @Produce      image/png
// @Param        boxId       query string true  "Box id"
// @Param        labelSizeId query string false "Label size id" default(4x6-inch-(inventory))
// @Param        template    query string false "Template key" default(standard_inventory)
// @Param        dpi         query int    false "Render DPI" default(96)
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse "boxId required"
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/exports/png [get]
func (h *Handler) PreviewPNG(c *gin.Context) {
	boxID := c.Query("boxId")
	if boxID == "" {
		NewResponseBuilder(c).Fail(&dto.ValidationError{Field: "boxId", Message: "boxId required"})
		return
	}

	dpi, err := queryDPI(c, h.previewDPI)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}

	result, err := h.labels.Export(c.Request.Context(), service.ExportInput{
		Format:      service.FormatPNG,
		BoxIDs:      []string{boxID},
		LabelSizeID: c.DefaultQuery("labelSizeId", inventoryLabelSizeID),
		Template:    c.Query("template"),
		DPI:         dpi,
		BaseURL:     h.baseURL.Resolve(c),
	})
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}

	setWarnings(c, result.Warnings)
	c.Header("Cache-Control", "no-store, must-revalidate")
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// ExportCSV handles POST /api/v1/exports/csv.
//
// @Summary      Export CSV
// @Description  Writes one row per box with its scan URL, for import into label printer apps.
// @Tags         Exports
// @Accept       json
// @Produce      text/csv
// @Param        request body dto.ExportRequest true "Boxes and provider"
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/exports/csv [post]
func (h *Handler) ExportCSV(c *gin.Context) {
	req, ok := bind[dto.ExportRequest](c)
	if !ok {
		return
	}

	result, err := h.labels.Export(c.Request.Context(), service.ExportInput{
		Format:   service.FormatCSV,
		BoxIDs:   req.BoxIDs,
		Template: req.Template,
		Provider: req.Provider,
		BaseURL:  h.baseURL.Resolve(c),
	})
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	sendFile(c, result.ContentType, attachment(stampedName("boxes", "csv")), result.Data)
}

// BoxLabel handles GET /api/v1/exports/label/:id.
//
// @Summary      One-click box label
// @Description  Renders the label of one box inline. Without labelSizeId, or with an unknown one, the first single-label size is used.
// @Tags         Exports
// @Produce      application/pdf
// @Produce      image/png
// @Param        id          path  string true  "Box id"
// @Param        format      query string false "pdf or png" default(pdf)
// @Param        labelSizeId query string false "Label size id"
// @Param        template    query string false "Template key" default(standard_inventory)
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse "No label sizes configured"
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/exports/label/{id} [get]
func (h *Handler) BoxLabel(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", service.FormatPDF))
	if format != service.FormatPDF && format != service.FormatPNG {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyUnknownFormat, service.ErrUnknownFormat)
		return
	}

	result, err := h.labels.Export(c.Request.Context(), service.ExportInput{
		Format:       format,
		BoxIDs:       []string{c.Param("id")},
		LabelSizeID:  c.Query("labelSizeId"),
		FallbackSize: true,
		Template:     c.Query("template"),
		BaseURL:      h.baseURL.Resolve(c),
	})
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}

	shortCode := result.Boxes[0].ShortCode
	setWarnings(c, result.Warnings)
	sendFile(c, result.ContentType, "inline; filename="+shortCode+"-label."+format, result.Data)
}

// MasterIndex handles GET /api/v1/exports/master-index.
//
// @Summary      Master index
// @Description  Renders a PDF listing every box grouped by room, for the moving crew.
// @Tags         Exports
// @Produce      application/pdf
// @Success      200 {file} binary
// @Security     SessionCookie
// @Router       /api/v1/exports/master-index [get]
func (h *Handler) MasterIndex(c *gin.Context) {
	data, err := h.labels.MasterIndex(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	sendFile(c, render.ContentTypePDF, attachment("master-index.pdf"), data)
}

// Insurance handles GET /api/v1/exports/insurance.
//
// @Summary      Insurance report
// @Description  Lists boxes with condition, damage notes and estimated value, highest value first.
// @Tags         Exports
// @Produce      text/csv
// @Produce      application/pdf
// @Param        format query string false "csv or pdf" default(csv)
// @Success      200 {file} binary
// @Failure      400 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/exports/insurance [get]
func (h *Handler) Insurance(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", service.FormatCSV))
	result, err := h.labels.Insurance(c.Request.Context(), format)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}

	name := "insurance.csv"
	if format == service.FormatPDF {
		name = "insurance-summary.pdf"
	}
	sendFile(c, result.ContentType, attachment(name), result.Data)
}

// ListProviders handles GET /api/v1/exports/providers.
//
// @Summary      Export providers
// @Description  Lists the export providers with their printing guidance.
// @Tags         Exports
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ProvidersResponse}
// @Router       /api/v1/exports/providers [get]
func (h *Handler) ListProviders(c *gin.Context) {
	providers := lo.Map(h.labels.Providers(), func(p export.Info, _ int) dto.ProviderInfo {
		return dto.ProviderInfo{Name: p.Name, Guidance: p.Guidance}
	})
	NewResponseBuilder(c).SuccessOK(dto.ProvidersResponse{Providers: providers})
}

func setWarnings(c *gin.Context, warnings []string) {
	if len(warnings) > 0 {
		c.Header(WarningsHeader, strings.Join(warnings, ","))
	}
}
