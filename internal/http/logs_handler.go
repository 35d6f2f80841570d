package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/repository"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = repository.MaxLogQueryLimit
)

// ListLogs handles GET /api/v1/logs.
//
// @Summary      Request logs
// @Description  Lists stored request logs, newest first. Look up a failed request by the X-Request-ID it returned.
// @Tags         Health
// @Produce      json
// @Param        request_id query string false "Request ID"
// @Param        level      query string false "info, warn or error"
// @Param        method     query string false "HTTP method"
// @Param        path       query string false "Request path"
// @Param        from       query string false "RFC 3339 start time"
// @Param        to         query string false "RFC 3339 end time"
// @Param        limit      query int    false "Page size" default(50)
// @Param        skip       query int    false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.LogPage}
// @Failure      400 {object} dto.ErrorResponse "Malformed time"
// @Security     SessionCookie
// @Router       /api/v1/logs [get]
func (h *Handler) ListLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts, err := logQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if h.activity == nil {
		builder.SuccessOK(dto.LogPage{Items: []model.LogEntry{}, Limit: opts.Limit, Skip: opts.Skip})
		return
	}

	ctx := c.Request.Context()
	items, err := h.activity.QueryLogs(ctx, opts)
	if err != nil {
		builder.Fail(err)
		return
	}
	total, err := h.activity.CountLogs(ctx, opts)
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.LogPage{Items: items, Total: total, Limit: opts.Limit, Skip: opts.Skip})
}

func logQuery(c *gin.Context) (model.LogQueryOptions, error) {
	opts := model.LogQueryOptions{
		RequestID: c.Query("request_id"),
		Level:     strings.ToLower(c.Query("level")),
		Method:    strings.ToUpper(c.Query("method")),
		Path:      c.Query("path"),
		Limit:     min(queryInt(c, "limit", defaultLogLimit), maxLogLimit),
		Skip:      queryInt(c, "skip", 0),
	}

	for key, dst := range map[string]**time.Time{"from": &opts.StartTime, "to": &opts.EndTime} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return opts, err
		}
		*dst = &t
	}
	return opts, nil
}
