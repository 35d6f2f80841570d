package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/repository"
)

const defaultActivityLimit = 50

// ListBoxes handles GET /api/v1/boxes.
//
// @Summary      List boxes
// @Description  Lists boxes newest first, optionally filtered by room code and status.
// @Tags         Boxes
// @Produce      json
// @Param        roomCode query string false "Room code filter"
// @Param        status   query string false "Status filter" Enums(draft, packed, in_transit, delivered, unpacked)
// @Param        limit    query int    false "Maximum number of boxes" default(200)
// @Success      200 {object} dto.SuccessResponse{data=[]model.Box}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/boxes [get]
func (h *Handler) ListBoxes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	status := model.BoxStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		builder.Fail(&dto.ValidationError{Field: "status", Message: "unknown status"})
		return
	}

	boxes, err := h.boxes.List(c.Request.Context(), repository.BoxListOptions{
		RoomCode: c.Query("roomCode"),
		Status:   status,
		Limit:    int64(queryInt(c, "limit", defaultListLimit)),
	})
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(boxes)
}

// CreateBox handles POST /api/v1/boxes.
//
// @Summary      Create box
// @Description  Creates a box with a generated short code. A missing room code is suggested from the room name.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateBoxRequest true "Box"
// @Success      201 {object} dto.SuccessResponse{data=model.Box}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse "Short codes exhausted"
// @Security     SessionCookie
// @Router       /api/v1/boxes [post]
func (h *Handler) CreateBox(c *gin.Context) {
	req, ok := bind[dto.CreateBoxRequest](c)
	if !ok {
		return
	}
	box, err := h.boxes.Create(c.Request.Context(), *req)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(box)
}

// QuickCreateBox handles POST /api/v1/boxes/quick.
//
// @Summary      Quick-add box
// @Description  Creates a box from a room name only, for fast labelling while packing.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuickBoxRequest true "Room and fragile flag"
// @Success      201 {object} dto.SuccessResponse{data=model.Box}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/boxes/quick [post]
func (h *Handler) QuickCreateBox(c *gin.Context) {
	req, ok := bind[dto.QuickBoxRequest](c)
	if !ok {
		return
	}
	box, err := h.boxes.QuickCreate(c.Request.Context(), *req)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(box)
}

// GetBox handles GET /api/v1/boxes/:id.
//
// @Summary      Get box
// @Tags         Boxes
// @Produce      json
// @Param        id path string true "Box id"
// @Success      200 {object} dto.SuccessResponse{data=model.Box}
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/boxes/{id} [get]
func (h *Handler) GetBox(c *gin.Context) {
	box, err := h.boxes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(box)
}

// UpdateBox handles PATCH /api/v1/boxes/:id.
//
// @Summary      Update box
// @Description  Applies the fields present in the body. Changing status records a status event.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        id path string true "Box id"
// @Param        request body dto.UpdateBoxRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.Box}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/boxes/{id} [patch]
func (h *Handler) UpdateBox(c *gin.Context) {
	req, ok := bind[dto.UpdateBoxRequest](c)
	if !ok {
		return
	}
	box, err := h.boxes.Update(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(box)
}

// DeleteBox handles DELETE /api/v1/boxes/:id.
//
// @Summary      Delete box
// @Tags         Boxes
// @Param        id path string true "Box id"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/boxes/{id} [delete]
func (h *Handler) DeleteBox(c *gin.Context) {
	if err := h.boxes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItems handles POST /api/v1/boxes/:id/items.
//
// @Summary      Add items
// @Description  Adds a single item, or parses bulkInput ("plates x6, mugs (4)") into several packed items.
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        id path string true "Box id"
// @Param        request body dto.AddItemsRequest true "Item or bulk input"
// @Success      201 {object} dto.SuccessResponse{data=[]model.Item}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/boxes/{id}/items [post]
func (h *Handler) AddItems(c *gin.Context) {
	req, ok := bind[dto.AddItemsRequest](c)
	if !ok {
		return
	}
	items, err := h.boxes.AddItems(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(items)
}

// UpdateItem handles PATCH /api/v1/boxes/:id/items.
//
// @Summary      Update item
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        id path string true "Box id"
// @Param        request body dto.UpdateItemRequest true "Item"
// @Success      200 {object} dto.SuccessResponse{data=model.Item}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/boxes/{id}/items [patch]
func (h *Handler) UpdateItem(c *gin.Context) {
	req, ok := bind[dto.UpdateItemRequest](c)
	if !ok {
		return
	}
	item, err := h.boxes.UpdateItem(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(item)
}

// DeleteItem handles DELETE /api/v1/boxes/:id/items.
//
// @Summary      Delete item
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        id path string true "Box id"
// @Param        request body dto.DeleteItemRequest true "Item id"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Item}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/boxes/{id}/items [delete]
func (h *Handler) DeleteItem(c *gin.Context) {
	req, ok := bind[dto.DeleteItemRequest](c)
	if !ok {
		return
	}
	items, err := h.boxes.DeleteItem(c.Request.Context(), c.Param("id"), req.ID)
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(items)
}

// BoxActivity handles GET /api/v1/boxes/:id/activity.
//
// @Summary      Box activity
// @Description  Lists the latest recorded events of a box.
// @Tags         Boxes
// @Produce      json
// @Param        id    path  string true  "Box id"
// @Param        limit query int    false "Maximum number of events" default(50)
// @Success      200 {object} dto.SuccessResponse{data=[]model.ActivityLog}
// @Security     SessionCookie
// @Router       /api/v1/boxes/{id}/activity [get]
func (h *Handler) BoxActivity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.activity == nil {
		builder.SuccessOK([]model.ActivityLog{})
		return
	}
	events, err := h.activity.Activity(c.Request.Context(), c.Param("id"), queryInt(c, "limit", defaultActivityLimit))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(events)
}

// Scan handles POST /api/v1/scan.
//
// @Summary      Resolve scan
// @Description  Resolves a scanned QR URL or a typed short code to its box.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        request body dto.ScanRequest true "Scanned value"
// @Success      200 {object} dto.SuccessResponse{data=model.Box}
// @Failure      400 {object} dto.ErrorResponse "No code"
// @Failure      404 {object} dto.ErrorResponse
// @Security     SessionCookie
// @Router       /api/v1/scan [post]
func (h *Handler) Scan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	box, err := h.boxes.Scan(c.Request.Context(), req.Value)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(box)
}

// Search handles GET /api/v1/search.
//
// @Summary      Search boxes and items
// @Tags         Boxes
// @Produce      json
// @Param        q query string true "Search text"
// @Success      200 {object} dto.SuccessResponse{data=[]model.SearchHit}
// @Security     SessionCookie
// @Router       /api/v1/search [get]
func (h *Handler) Search(c *gin.Context) {
	hits, err := h.boxes.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(hits)
}

// SuggestRoomCode handles GET /api/v1/room-codes/suggest.
//
// @Summary      Suggest room code
// @Description  Proposes a room code for a room name that no stored box uses yet.
// @Tags         Boxes
// @Produce      json
// @Param        room query string true "Room name"
// @Success      200 {object} dto.SuccessResponse{data=map[string]string}
// @Security     SessionCookie
// @Router       /api/v1/room-codes/suggest [get]
func (h *Handler) SuggestRoomCode(c *gin.Context) {
	code, err := h.boxes.SuggestRoomCode(c.Request.Context(), c.Query("room"))
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(gin.H{"roomCode": code})
}
