package mongodb

import (
	"context"
	"errors"
	"fmt"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type itemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) repository.ItemRepository {
	return &itemRepository{coll: db.Collection("items")}
}

func (r *itemRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Item, error) {
	item := &domain.Item{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	return r.find(ctx, bson.M{})
}

func (r *itemRepository) ListByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *itemRepository) ListBySubcategory(ctx context.Context, subcategory string) ([]domain.Item, error) {
	return r.find(ctx, bson.M{"subcategory": subcategory})
}

// ListFeatured samples up to count random featured items for the home page.
func (r *itemRepository) ListFeatured(ctx context.Context, count int32) ([]domain.Item, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_featured": true}}},
		{{Key: "$sample", Value: bson.M{"size": count}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sample featured items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode featured items: %w", err)
	}
	return items, nil
}

// UpdateQuantity sets the quantity and recomputes the derived availability
// flag in the same update.
func (r *itemRepository) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int32) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"quantity": quantity, "availability": quantity > 0},
	})
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) find(ctx context.Context, filter bson.M) ([]domain.Item, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}
