package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/export"
	"github.com/guttosm/move-labels/internal/label"
	"github.com/guttosm/move-labels/internal/logger"
	"github.com/guttosm/move-labels/internal/metrics"
	"github.com/guttosm/move-labels/internal/render"
)

// Export formats.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
	FormatCSV = "csv"
)

var (
	// ErrUnknownFormat is returned for an export format other than pdf, png or csv.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrNoBoxesFound is returned when none of the requested boxes exist.
	ErrNoBoxesFound = errors.New("no boxes found")
)

// ExportInput describes one export.
type ExportInput struct {
	Format      string
	BoxIDs      []string
	LabelSizeID string
	// FallbackSize resolves a missing or unknown LabelSizeID to the default
	// single-label size instead of failing.
	FallbackSize bool
	Template     string
	DPI          int
	Provider     string
	BaseURL      string
}

// ExportResult is a rendered file.
type ExportResult struct {
	Data        []byte
	ContentType string
	Boxes       []*model.Box
	Provider    string
	Guidance    string
	// Warnings lists the distinct layout compromises of the rendered labels.
	Warnings []string
}

// LabelService previews layouts and renders exports.
type LabelService interface {
	Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error)
	Export(ctx context.Context, in ExportInput) (*ExportResult, error)
	MasterIndex(ctx context.Context) ([]byte, error)
	Insurance(ctx context.Context, format string) (*ExportResult, error)
	Providers() []export.Info
}

// LabelServiceImpl implements LabelService.
type LabelServiceImpl struct {
	boxes         BoxService
	sizes         LabelSizeService
	providers     *export.Registry
	activity      ActivityRecorder
	renderTimeout time.Duration
}

// NewLabelService creates a label service. A zero renderTimeout disables
// the render deadline.
func NewLabelService(boxes BoxService, sizes LabelSizeService, providers *export.Registry, activity ActivityRecorder, renderTimeout time.Duration) *LabelServiceImpl {
	if providers == nil {
		providers = export.NewRegistry()
	}
	return &LabelServiceImpl{
		boxes:         boxes,
		sizes:         sizes,
		providers:     providers,
		activity:      activity,
		renderTimeout: renderTimeout,
	}
}

// Preview solves the layout of a label for the live editor.
func (s *LabelServiceImpl) Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	tpl, ok := label.ParseTemplate(req.Template)
	if !ok {
		return nil, &dto.ValidationError{Field: "template", Message: "unknown template"}
	}

	var size label.LabelSize
	if req.LabelSizeID != "" {
		stored, err := s.sizes.Get(ctx, req.LabelSizeID)
		if err != nil {
			return nil, err
		}
		size = stored.Geometry()
	} else if req.LabelSize != nil {
		size = req.LabelSize.Geometry()
	} else {
		return nil, &dto.ValidationError{Field: "labelSizeId", Message: "labelSizeId or labelSize is required"}
	}

	data := previewData(req.Data)
	layout := label.ComputeLayout(size, data, tpl)
	plan := label.Plan(size, data, tpl)
	metrics.RecordLayoutWarnings(layout.Warnings)

	return &dto.PreviewResponse{
		LabelSize: size,
		Template:  tpl,
		Layout:    layout,
		Strategy:  plan.Kind(),
		Plan:      plan,
	}, nil
}

// Export renders the requested boxes through the named provider. Boxes
// keep the order of BoxIDs.
func (s *LabelServiceImpl) Export(ctx context.Context, in ExportInput) (*ExportResult, error) {
	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format != FormatPDF && format != FormatPNG && format != FormatCSV {
		return nil, ErrUnknownFormat
	}
	tpl, ok := label.ParseTemplate(in.Template)
	if !ok {
		return nil, &dto.ValidationError{Field: "template", Message: "unknown template"}
	}

	boxes, err := s.boxes.GetMany(ctx, in.BoxIDs)
	if err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		return nil, ErrNoBoxesFound
	}

	provider, _ := s.providers.Get(in.Provider)
	result := &ExportResult{Boxes: boxes, Provider: provider.Name(), Guidance: provider.Guidance()}
	renderBoxes := lo.Map(boxes, func(b *model.Box, _ int) render.Box { return ToRenderBox(b) })

	if format == FormatCSV {
		result.Data = provider.ExportCSV(renderBoxes, in.BaseURL)
		result.ContentType = render.ContentTypeCSV
		metrics.RecordLabelRender(format, string(tpl), "success", len(boxes), 0)
		return result, nil
	}

	size, err := s.resolveSize(ctx, in)
	if err != nil {
		return nil, err
	}
	geometry := size.Geometry()
	req := render.Request{
		Boxes:     renderBoxes,
		Template:  tpl,
		LabelSize: &geometry,
		BaseURL:   in.BaseURL,
		DPI:       in.DPI,
	}
	result.Warnings = s.layoutWarnings(req)

	renderCtx := ctx
	if s.renderTimeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, s.renderTimeout)
		defer cancel()
	}

	start := time.Now()
	switch format {
	case FormatPDF:
		result.Data, err = provider.ExportPDF(renderCtx, req)
		result.ContentType = render.ContentTypePDF
	case FormatPNG:
		result.Data, result.ContentType, err = provider.ExportPNG(renderCtx, req)
	}
	if err != nil {
		metrics.RecordLabelRender(format, string(tpl), "error", len(boxes), time.Since(start))
		l := logger.ForExport(format, string(tpl), size.ID, len(boxes))
		l.Error().Err(err).Msg("label render failed")
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	metrics.RecordLabelRender(format, string(tpl), "success", len(boxes), time.Since(start))

	for _, b := range boxes {
		s.record(ctx, model.ActionLabelsPrinted, b.ID.Hex(), map[string]any{"format": format, "template": string(tpl), "labelSizeId": size.ID})
	}
	return result, nil
}

func (s *LabelServiceImpl) resolveSize(ctx context.Context, in ExportInput) (*model.LabelSize, error) {
	if in.FallbackSize {
		return s.sizes.Resolve(ctx, in.LabelSizeID)
	}
	return s.sizes.Get(ctx, in.LabelSizeID)
}

// layoutWarnings reports layout compromises of single-label renders and
// returns them deduplicated.
func (s *LabelServiceImpl) layoutWarnings(req render.Request) []string {
	if req.LabelSize.IsAvery5160Sheet {
		return nil
	}
	var all []string
	for _, b := range req.Boxes {
		var warnings []string
		if req.Template.IsInventory() {
			warnings = label.PlanInventory(*req.LabelSize, render.RenderData(b, req.BaseURL)).Warnings
		} else {
			warnings = label.ComputeLayout(*req.LabelSize, render.RenderData(b, req.BaseURL), req.Template).Warnings
		}
		if len(warnings) == 0 {
			continue
		}
		metrics.RecordLayoutWarnings(warnings)
		all = append(all, warnings...)
		log.Debug().
			Str("short_code", b.ShortCode).
			Str("template", string(req.Template)).
			Strs("warnings", warnings).
			Msg("label layout compromised")
	}
	return lo.Uniq(all)
}

// MasterIndex renders the room-by-room box index.
func (s *LabelServiceImpl) MasterIndex(ctx context.Context) ([]byte, error) {
	boxes, err := s.boxes.ListForMasterIndex(ctx)
	if err != nil {
		return nil, err
	}
	return render.MasterIndexPDF(lo.Map(boxes, func(b *model.Box, _ int) render.Box { return ToRenderBox(b) }))
}

// Insurance renders the insurance report as CSV or PDF.
func (s *LabelServiceImpl) Insurance(ctx context.Context, format string) (*ExportResult, error) {
	boxes, err := s.boxes.ListForInsurance(ctx)
	if err != nil {
		return nil, err
	}
	renderBoxes := lo.Map(boxes, func(b *model.Box, _ int) render.Box { return ToRenderBox(b) })

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		return &ExportResult{Data: render.InsuranceCSV(renderBoxes), ContentType: render.ContentTypeCSV, Boxes: boxes}, nil
	case FormatPDF:
		data, err := render.InsurancePDF(renderBoxes)
		if err != nil {
			return nil, fmt.Errorf("render insurance summary: %w", err)
		}
		return &ExportResult{Data: data, ContentType: render.ContentTypePDF, Boxes: boxes}, nil
	}
	return nil, ErrUnknownFormat
}

// Providers lists the export providers.
func (s *LabelServiceImpl) Providers() []export.Info {
	return s.providers.List()
}

func (s *LabelServiceImpl) record(ctx context.Context, action, boxID string, details map[string]any) {
	if s.activity != nil {
		s.activity.Record(ctx, action, boxID, details)
	}
}

// ToRenderBox converts a stored box into the renderer read model.
func ToRenderBox(b *model.Box) render.Box {
	return render.Box{
		ID:             b.ID.Hex(),
		ShortCode:      b.ShortCode,
		RoomCode:       b.RoomCode,
		Room:           b.Room,
		Zone:           b.Zone,
		Priority:       string(b.Priority),
		Fragile:        b.Fragile,
		Status:         string(b.Status),
		Notes:          b.Notes,
		Condition:      b.Condition,
		DamageNotes:    b.DamageNotes,
		EstimatedValue: b.EstimatedValue,
		Items: lo.Map(b.Items, func(it model.Item, _ int) render.Item {
			return render.Item{Name: it.Name, Qty: it.Qty}
		}),
	}
}

func previewData(d dto.PreviewData) label.RenderData {
	return label.RenderData{
		RoomCode:  d.RoomCode,
		ShortCode: d.ShortCode,
		Room:      d.Room,
		Zone:      d.Zone,
		Priority:  d.Priority,
		Fragile:   d.Fragile,
		Notes:     d.Notes,
		QRURL:     d.QRURL,
		Items: lo.Map(d.Items, func(it dto.PreviewItem, _ int) label.Item {
			return label.Item{Name: it.Name, Qty: it.Qty}
		}),
	}
}
