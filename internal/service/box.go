package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/move-labels/internal/codes"
	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/label"
	"github.com/guttosm/move-labels/internal/metrics"
	"github.com/guttosm/move-labels/internal/repository"
)

// ShortCodeAttempts bounds the inserts tried when short codes collide.
const ShortCodeAttempts = 5

// Box defaults applied on create.
const (
	DefaultHouse      = "House"
	DefaultQuickHouse = "Main House"
	DefaultFloor      = "Main"
	DefaultRoom       = "Room"
)

const searchLimit = 200

var (
	// ErrRepositoryNotConfigured is returned when the service runs without a database.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrBoxNotFound is returned when no box matches an id or short code.
	ErrBoxNotFound = errors.New("box not found")
	// ErrItemNotFound is returned when an item does not belong to the box.
	ErrItemNotFound = errors.New("item not found")
	// ErrShortCodeExhausted is returned when every insert attempt collided.
	ErrShortCodeExhausted = errors.New("could not generate unique short code")
	// ErrEmptyScan is returned when a scanned value carries no short code.
	ErrEmptyScan = errors.New("no code")
)

// BoxService manages boxes and their inventory.
type BoxService interface {
	Create(ctx context.Context, req dto.CreateBoxRequest) (*model.Box, error)
	QuickCreate(ctx context.Context, req dto.QuickBoxRequest) (*model.Box, error)
	Get(ctx context.Context, id string) (*model.Box, error)
	GetMany(ctx context.Context, ids []string) ([]*model.Box, error)
	List(ctx context.Context, opts repository.BoxListOptions) ([]*model.Box, error)
	Update(ctx context.Context, id string, req dto.UpdateBoxRequest) (*model.Box, error)
	SetStatus(ctx context.Context, id string, status model.BoxStatus) (*model.Box, error)
	Delete(ctx context.Context, id string) error
	Scan(ctx context.Context, value string) (*model.Box, error)
	Search(ctx context.Context, query string) ([]model.SearchHit, error)
	SuggestRoomCode(ctx context.Context, room string) (string, error)
	AddItems(ctx context.Context, id string, req dto.AddItemsRequest) ([]model.Item, error)
	UpdateItem(ctx context.Context, id string, req dto.UpdateItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, id, itemID string) ([]model.Item, error)
	ListForMasterIndex(ctx context.Context) ([]*model.Box, error)
	ListForInsurance(ctx context.Context) ([]*model.Box, error)
}

// BoxServiceImpl implements BoxService.
type BoxServiceImpl struct {
	repo      repository.BoxRepositoryInterface
	rooms     *codes.RoomCodeSuggester
	activity  ActivityRecorder
	now       func() time.Time
	newItemID func() string
}

// BoxOption configures a BoxServiceImpl.
type BoxOption func(*BoxServiceImpl)

// WithRoomCodes replaces the room code suggester.
func WithRoomCodes(s *codes.RoomCodeSuggester) BoxOption {
	return func(b *BoxServiceImpl) {
		if s != nil {
			b.rooms = s
		}
	}
}

// WithActivity records box events through recorder.
func WithActivity(recorder ActivityRecorder) BoxOption {
	return func(b *BoxServiceImpl) {
		b.activity = recorder
	}
}

// NewBoxService creates a box service. A nil repo makes every call fail
// with ErrRepositoryNotConfigured.
func NewBoxService(repo repository.BoxRepositoryInterface, opts ...BoxOption) *BoxServiceImpl {
	s := &BoxServiceImpl{
		repo:      repo,
		rooms:     codes.NewRoomCodeSuggester(nil),
		now:       time.Now,
		newItemID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new box. The room code is suggested from the room name
// when missing, and the short code follows the most recent box.
func (s *BoxServiceImpl) Create(ctx context.Context, req dto.CreateBoxRequest) (*model.Box, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	roomCode := strings.TrimSpace(req.RoomCode)
	if roomCode == "" {
		existing, err := s.repo.RoomCodes(ctx)
		if err != nil {
			return nil, fmt.Errorf("load room codes: %w", err)
		}
		roomCode = s.rooms.Suggest(req.Room, existing)
	}

	box := &model.Box{
		House:          lo.CoalesceOrEmpty(req.House, DefaultHouse),
		Floor:          lo.CoalesceOrEmpty(req.Floor, DefaultFloor),
		Room:           lo.CoalesceOrEmpty(req.Room, DefaultRoom),
		Zone:           req.Zone,
		RoomCode:       roomCode,
		Category:       req.Category,
		Priority:       lo.CoalesceOrEmpty(model.Priority(req.Priority), model.PriorityMedium),
		Fragile:        req.Fragile,
		Status:         lo.CoalesceOrEmpty(model.BoxStatus(req.Status), model.StatusDraft),
		Notes:          req.Notes,
		Condition:      lo.CoalesceOrEmpty(req.Condition, model.ConditionOK),
		DamageNotes:    req.DamageNotes,
		EstimatedValue: string(req.EstimatedValue),
		StorageArea:    req.StorageArea,
		StorageShelf:   req.StorageShelf,
		Items:          []model.Item{},
	}

	if err := s.insert(ctx, box); err != nil {
		return nil, err
	}

	s.record(ctx, model.ActionBoxCreated, box.ID.Hex(), map[string]any{"shortCode": box.ShortCode})
	return box, nil
}

// insert tries ShortCodeAttempts short codes before giving up.
func (s *BoxServiceImpl) insert(ctx context.Context, box *model.Box) error {
	for attempt := 0; attempt < ShortCodeAttempts; attempt++ {
		latest, err := s.repo.Latest(ctx)
		if err != nil {
			return fmt.Errorf("load latest box: %w", err)
		}
		previous := ""
		if latest != nil {
			previous = latest.ShortCode
		}
		box.ShortCode = codes.NextShortCode(previous)
		box.ID = primitive.NilObjectID

		err = s.repo.Create(ctx, box)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateShortCode) {
			return fmt.Errorf("create box: %w", err)
		}
		metrics.RecordShortCodeRetry()
		log.Debug().Str("short_code", box.ShortCode).Int("attempt", attempt+1).Msg("short code taken, retrying")
	}
	return ErrShortCodeExhausted
}

// QuickCreate stores a box from just a room name, with quick defaults.
func (s *BoxServiceImpl) QuickCreate(ctx context.Context, req dto.QuickBoxRequest) (*model.Box, error) {
	room := strings.TrimSpace(req.Room)
	if room == "" {
		room = DefaultRoom
	}
	return s.Create(ctx, dto.CreateBoxRequest{
		House:    DefaultQuickHouse,
		Floor:    DefaultFloor,
		Room:     room,
		RoomCode: s.rooms.Suggest(room, nil),
		Priority: string(model.PriorityMedium),
		Status:   string(model.StatusDraft),
		Fragile:  req.Fragile,
	})
}

// Get returns the box with id.
func (s *BoxServiceImpl) Get(ctx context.Context, id string) (*model.Box, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrBoxNotFound
	}
	box, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrBoxNotFound
	}
	return box, nil
}

// GetMany returns the boxes with the given ids in the order asked for.
// Unknown ids are skipped.
func (s *BoxServiceImpl) GetMany(ctx context.Context, ids []string) ([]*model.Box, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oids := lo.FilterMap(lo.Uniq(ids), func(id string, _ int) (primitive.ObjectID, bool) {
		oid, err := primitive.ObjectIDFromHex(id)
		return oid, err == nil
	})
	if len(oids) == 0 {
		return []*model.Box{}, nil
	}

	found, err := s.repo.FindByIDs(ctx, oids)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(found, func(b *model.Box) primitive.ObjectID { return b.ID })
	return lo.FilterMap(oids, func(oid primitive.ObjectID, _ int) (*model.Box, bool) {
		b, ok := byID[oid]
		return b, ok
	}), nil
}

// List returns boxes, newest first.
func (s *BoxServiceImpl) List(ctx context.Context, opts repository.BoxListOptions) ([]*model.Box, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, opts)
}

// Update applies the fields present in req.
func (s *BoxServiceImpl) Update(ctx context.Context, id string, req dto.UpdateBoxRequest) (*model.Box, error) {
	box, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&box.House, req.House)
	setString(&box.Floor, req.Floor)
	setString(&box.Room, req.Room)
	setString(&box.Zone, req.Zone)
	setString(&box.Category, req.Category)
	setString(&box.Notes, req.Notes)
	setString(&box.Condition, req.Condition)
	setString(&box.DamageNotes, req.DamageNotes)
	setString(&box.StorageArea, req.StorageArea)
	setString(&box.StorageShelf, req.StorageShelf)
	if req.RoomCode != nil {
		box.RoomCode = strings.TrimSpace(*req.RoomCode)
	}
	if req.Priority != nil && *req.Priority != "" {
		box.Priority = model.Priority(*req.Priority)
	}
	if req.Status != nil {
		box.Status = model.BoxStatus(*req.Status)
	}
	if req.Fragile != nil {
		box.Fragile = *req.Fragile
	}
	if req.EstimatedValue != nil {
		box.EstimatedValue = string(*req.EstimatedValue)
	}

	if err := s.save(ctx, box); err != nil {
		return nil, err
	}
	s.record(ctx, model.ActionBoxUpdated, box.ID.Hex(), nil)
	return box, nil
}

// SetStatus moves a box to another lifecycle stage.
func (s *BoxServiceImpl) SetStatus(ctx context.Context, id string, status model.BoxStatus) (*model.Box, error) {
	if !status.Valid() {
		return nil, &dto.ValidationError{Field: "status", Message: "unknown status"}
	}
	box, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	from := box.Status
	box.Status = status
	if err := s.save(ctx, box); err != nil {
		return nil, err
	}
	s.record(ctx, model.ActionBoxUpdated, box.ID.Hex(), map[string]any{"from": string(from), "to": string(status)})
	return box, nil
}

func (s *BoxServiceImpl) save(ctx context.Context, box *model.Box) error {
	err := s.repo.Update(ctx, box)
	if repository.IsNotFound(err) {
		return ErrBoxNotFound
	}
	return err
}

// Delete removes a box with its items.
func (s *BoxServiceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrBoxNotFound
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBoxNotFound
	}
	s.record(ctx, model.ActionBoxDeleted, id, nil)
	return nil
}

// Scan resolves a scanned QR payload or a typed short code to its box.
func (s *BoxServiceImpl) Scan(ctx context.Context, value string) (*model.Box, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	code := label.ShortCodeFromScan(value)
	if code == "" {
		return nil, ErrEmptyScan
	}
	box, err := s.repo.FindByShortCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrBoxNotFound
	}
	s.record(ctx, model.ActionBoxScanned, box.ID.Hex(), map[string]any{"shortCode": code})
	return box, nil
}

// Search matches boxes by room, zone and codes, and items by name and tag.
// A box with matching items yields one hit per item, otherwise one box hit.
func (s *BoxServiceImpl) Search(ctx context.Context, query string) ([]model.SearchHit, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.SearchHit{}, nil
	}

	boxes, err := s.repo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	return lo.FlatMap(boxes, func(b *model.Box, _ int) []model.SearchHit {
		matches := lo.Filter(b.Items, func(it model.Item, _ int) bool {
			return strings.Contains(strings.ToLower(it.Name), needle) ||
				lo.SomeBy(it.Tags, func(tag string) bool { return strings.Contains(strings.ToLower(tag), needle) })
		})
		if len(matches) == 0 {
			return []model.SearchHit{{Type: model.HitBox, BoxID: b.ID.Hex(), ShortCode: b.ShortCode, Room: b.Room, Zone: b.Zone}}
		}
		return lo.Map(matches, func(it model.Item, _ int) model.SearchHit {
			return model.SearchHit{Type: model.HitItem, Item: it.Name, BoxID: b.ID.Hex(), ShortCode: b.ShortCode, Room: b.Room, Zone: b.Zone}
		})
	}), nil
}

// SuggestRoomCode proposes a room code that no stored box uses yet.
func (s *BoxServiceImpl) SuggestRoomCode(ctx context.Context, room string) (string, error) {
	if s.repo == nil {
		return "", ErrRepositoryNotConfigured
	}
	existing, err := s.repo.RoomCodes(ctx)
	if err != nil {
		return "", err
	}
	return s.rooms.Suggest(room, existing), nil
}

// AddItems appends either the parsed bulk input (all packed) or a single
// item and returns the box inventory in creation order.
func (s *BoxServiceImpl) AddItems(ctx context.Context, id string, req dto.AddItemsRequest) ([]model.Item, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrBoxNotFound
	}

	now := s.now().UTC()
	var items []model.Item
	if strings.TrimSpace(req.BulkInput) != "" {
		parsed := codes.ParseBulkItems(req.BulkInput)
		items = make([]model.Item, 0, len(parsed))
		for i, p := range parsed {
			items = append(items, model.Item{
				ID:     s.newItemID(),
				Name:   p.Name,
				Qty:    p.Qty,
				Packed: true,
				Tags:   []string{},
				// Keep the parsed order stable when sorting by creation time.
				CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			})
		}
	} else {
		items = []model.Item{{
			ID:        s.newItemID(),
			Name:      strings.TrimSpace(req.Name),
			Qty:       positiveQty(req.Qty),
			Packed:    req.Packed,
			Tags:      cleanTags(req.Tags),
			CreatedAt: now,
		}}
	}
	if len(items) == 0 {
		box, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return sortedItems(box.Items), nil
	}

	box, err := s.repo.AddItems(ctx, oid, items)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrBoxNotFound
	}
	s.record(ctx, model.ActionItemsAdded, id, map[string]any{"count": len(items)})
	return sortedItems(box.Items), nil
}

// UpdateItem rewrites one item of the box. An empty name keeps the old one.
func (s *BoxServiceImpl) UpdateItem(ctx context.Context, id string, req dto.UpdateItemRequest) (*model.Item, error) {
	box, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	idx := box.FindItem(req.ID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	item := box.Items[idx]
	if name := strings.TrimSpace(req.Name); name != "" {
		item.Name = name
	}
	item.Qty = positiveQty(req.Qty)
	item.Packed = req.Packed
	item.Tags = cleanTags(req.Tags)

	updated, err := s.repo.UpdateItem(ctx, box.ID, item)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

// DeleteItem removes one item and returns the remaining inventory.
func (s *BoxServiceImpl) DeleteItem(ctx context.Context, id, itemID string) ([]model.Item, error) {
	box, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if box.FindItem(itemID) < 0 {
		return nil, ErrItemNotFound
	}

	updated, err := s.repo.DeleteItem(ctx, box.ID, itemID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}
	return sortedItems(updated.Items), nil
}

// ListForMasterIndex returns every box ordered by room code, then short code.
func (s *BoxServiceImpl) ListForMasterIndex(ctx context.Context) ([]*model.Box, error) {
	boxes, err := s.List(ctx, repository.BoxListOptions{})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(boxes, func(a, b *model.Box) int {
		return cmp.Or(cmp.Compare(a.RoomCode, b.RoomCode), cmp.Compare(a.ShortCode, b.ShortCode))
	})
	return boxes, nil
}

// ListForInsurance returns every box, most valuable first. Boxes without a
// numeric estimate go last.
func (s *BoxServiceImpl) ListForInsurance(ctx context.Context) ([]*model.Box, error) {
	boxes, err := s.List(ctx, repository.BoxListOptions{})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(boxes, func(a, b *model.Box) int {
		av, aok := estimatedValue(a)
		bv, bok := estimatedValue(b)
		switch {
		case aok && bok:
			return cmp.Compare(bv, av)
		case aok:
			return -1
		case bok:
			return 1
		}
		return 0
	})
	return boxes, nil
}

func (s *BoxServiceImpl) record(ctx context.Context, action, boxID string, details map[string]any) {
	if s.activity == nil {
		return
	}
	s.activity.Record(ctx, action, boxID, details)
}

func estimatedValue(b *model.Box) (float64, bool) {
	v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(b.EstimatedValue), "$"))
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	return f, err == nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func positiveQty(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}

func cleanTags(tags []string) []string {
	out := lo.Compact(lo.Map(tags, func(t string, _ int) string { return strings.TrimSpace(t) }))
	if out == nil {
		return []string{}
	}
	return out
}

func sortedItems(items []model.Item) []model.Item {
	out := slices.Clone(items)
	if out == nil {
		return []model.Item{}
	}
	slices.SortStableFunc(out, func(a, b model.Item) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out
}
