package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/label"
	"github.com/guttosm/move-labels/internal/service"
)

const (
	defaultPreviewDPI = 96
	defaultListLimit  = 200
)

// Handler provides HTTP handlers for boxes, label sizes, labels, exports,
// bundles and activity events.
type Handler struct {
	boxes      service.BoxService
	sizes      service.LabelSizeService
	labels     service.LabelService
	bundles    service.BundleService
	activity   service.LoggingService
	baseURL    BaseURLResolver
	previewDPI int

	exportDPI      int
	exportTemplate string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithBaseURL sets how the public URL encoded in QR codes is resolved.
func WithBaseURL(r BaseURLResolver) HandlerOption {
	return func(h *Handler) {
		h.baseURL = r
	}
}

// WithPreviewDPI sets the DPI used by GET /exports/png when none is given.
func WithPreviewDPI(dpi int) HandlerOption {
	return func(h *Handler) {
		if dpi > 0 {
			h.previewDPI = dpi
		}
	}
}

// WithExportDefaults sets the DPI and template used by exports that do not
// name their own.
func WithExportDefaults(dpi int, template string) HandlerOption {
	return func(h *Handler) {
		h.exportDPI = dpi
		h.exportTemplate = template
	}
}

// WithActivityLog enables recording of client events and per-box activity reads.
func WithActivityLog(ls service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.activity = ls
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(
	boxes service.BoxService,
	sizes service.LabelSizeService,
	labels service.LabelService,
	bundles service.BundleService,
	opts ...HandlerOption,
) *Handler {
	h := &Handler{
		boxes:      boxes,
		sizes:      sizes,
		labels:     labels,
		bundles:    bundles,
		previewDPI: defaultPreviewDPI,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// sendFile writes a rendered file with its download name.
func sendFile(c *gin.Context, contentType, disposition string, data []byte) {
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, contentType, data)
}

func attachment(name string) string {
	return "attachment; filename=" + name
}

// stampedName builds names like labels-1717171717171.pdf.
func stampedName(prefix, ext string) string {
	return fmt.Sprintf("%s-%d.%s", prefix, time.Now().UnixMilli(), ext)
}

// queryDPI reads the dpi query parameter. A missing value yields def;
// anything outside 1..label.MaxDPI is a validation error.
func queryDPI(c *gin.Context, def int) (int, error) {
	raw, ok := c.GetQuery("dpi")
	if !ok || raw == "" {
		return def, nil
	}
	dpi, err := strconv.Atoi(raw)
	if err != nil || dpi < 1 || dpi > label.MaxDPI {
		return 0, &dto.ValidationError{Field: "dpi", Message: "must be between 1 and 1200"}
	}
	return dpi, nil
}

// queryInt parses an integer query parameter, returning def when it is
// missing or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
