package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/move-labels/internal/domain/model"
)

// BoxListOptions filters box listings. The zero value lists everything,
// newest first.
type BoxListOptions struct {
	RoomCode string
	Status   model.BoxStatus
	Limit    int64
}

// BoxRepository implements BoxRepositoryInterface on the boxes collection.
type BoxRepository struct {
	collection *mongo.Collection
}

// NewBoxRepository creates a new box repository.
func NewBoxRepository(db *MongoDB) *BoxRepository {
	return &BoxRepository{collection: db.Boxes}
}

// Create inserts box, assigning an id and timestamps. A short code clash
// is reported as ErrDuplicateShortCode so the caller can pick another.
func (r *BoxRepository) Create(ctx context.Context, box *model.Box) error {
	now := time.Now().UTC()
	if box.ID.IsZero() {
		box.ID = primitive.NewObjectID()
	}
	box.CreatedAt = now
	box.UpdatedAt = now
	if box.Items == nil {
		box.Items = []model.Item{}
	}

	_, err := r.collection.InsertOne(ctx, box)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateShortCode
	}
	return err
}

// FindByID finds a box by id.
func (r *BoxRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Box, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByShortCode finds a box by its printed short code.
func (r *BoxRepository) FindByShortCode(ctx context.Context, shortCode string) (*model.Box, error) {
	return r.findOne(ctx, bson.M{"short_code": shortCode})
}

func (r *BoxRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*model.Box, error) {
	var box model.Box
	err := r.collection.FindOne(ctx, filter, opts...).Decode(&box)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &box, nil
}

// FindByIDs returns the boxes with the given ids in creation order. Unknown
// ids are skipped.
func (r *BoxRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Box, error) {
	if len(ids) == 0 {
		return []*model.Box{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

// List returns boxes newest first.
func (r *BoxRepository) List(ctx context.Context, opts BoxListOptions) ([]*model.Box, error) {
	filter := bson.M{}
	if opts.RoomCode != "" {
		filter["room_code"] = opts.RoomCode
	}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(opts.Limit)
	}
	return r.find(ctx, filter, findOptions)
}

func (r *BoxRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Box, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	boxes := make([]*model.Box, 0)
	if err := cursor.All(ctx, &boxes); err != nil {
		return nil, err
	}
	return boxes, nil
}

// Latest returns the most recently created box, the seed of the next short code.
func (r *BoxRepository) Latest(ctx context.Context) (*model.Box, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.M{"short_code": 1, "created_at": 1})
	return r.findOne(ctx, bson.M{}, opts)
}

// Update replaces the stored box and bumps UpdatedAt.
func (r *BoxRepository) Update(ctx context.Context, box *model.Box) error {
	box.UpdatedAt = time.Now().UTC()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": box.ID}, box)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateShortCode
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a box and reports whether it existed.
func (r *BoxRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// RoomCodes returns every distinct room code in use.
func (r *BoxRepository) RoomCodes(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "room_code", bson.M{})
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			codes = append(codes, s)
		}
	}
	return codes, nil
}

// Search finds boxes whose room, zone, codes, item names or item tags
// contain query, ignoring case.
func (r *BoxRepository) Search(ctx context.Context, query string, limit int) ([]*model.Box, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"room": pattern},
		bson.M{"zone": pattern},
		bson.M{"room_code": pattern},
		bson.M{"short_code": pattern},
		bson.M{"items.name": pattern},
		bson.M{"items.tags": pattern},
	}}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}
	return r.find(ctx, filter, findOptions)
}

// AddItems appends items to a box and returns the updated box, or nil when
// the box does not exist.
func (r *BoxRepository) AddItems(ctx context.Context, id primitive.ObjectID, items []model.Item) (*model.Box, error) {
	update := bson.M{
		"$push": bson.M{"items": bson.M{"$each": items}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, update)
}

// UpdateItem replaces the item with item.ID. It returns nil when the box or
// the item does not exist.
func (r *BoxRepository) UpdateItem(ctx context.Context, id primitive.ObjectID, item model.Item) (*model.Box, error) {
	update := bson.M{"$set": bson.M{
		"items.$.name":   item.Name,
		"items.$.qty":    item.Qty,
		"items.$.packed": item.Packed,
		"items.$.tags":   item.Tags,
		"updated_at":     time.Now().UTC(),
	}}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id, "items.id": item.ID}, update)
}

// DeleteItem removes one item. It returns nil when the box or the item does
// not exist.
func (r *BoxRepository) DeleteItem(ctx context.Context, id primitive.ObjectID, itemID string) (*model.Box, error) {
	update := bson.M{
		"$pull": bson.M{"items": bson.M{"id": itemID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id, "items.id": itemID}, update)
}

func (r *BoxRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*model.Box, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var box model.Box
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&box)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &box, nil
}
