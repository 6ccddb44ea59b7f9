package saved_search

import (
	"context"
	"time"

	"go-shipdata/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SavedSearchRepository interface {
	Create(ctx context.Context, search *SavedSearch) error
	Get(ctx context.Context, id string) (*SavedSearch, error)
	List(ctx context.Context) ([]SavedSearch, error)
	Update(ctx context.Context, search *SavedSearch) error
	Delete(ctx context.Context, id string) error
	RecordUsage(ctx context.Context, id string) error
}

type SavedSearchRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSavedSearchRepository(db *database.MongodbDB) SavedSearchRepository {
	return &SavedSearchRepositoryImpl{
		collection: db.DB.Collection("saved_searches"),
	}
}

func (r *SavedSearchRepositoryImpl) Create(ctx context.Context, search *SavedSearch) error {
	if search.ID.IsZero() {
		search.ID = primitive.NewObjectID()
	}
	search.CreatedAt = time.Now()
	search.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, search)
	return err
}

func (r *SavedSearchRepositoryImpl) Get(ctx context.Context, id string) (*SavedSearch, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var search SavedSearch
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&search)
	if err != nil {
		return nil, err
	}

	return &search, nil
}

func (r *SavedSearchRepositoryImpl) List(ctx context.Context) ([]SavedSearch, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var searches []SavedSearch
	if err = cursor.All(ctx, &searches); err != nil {
		return nil, err
	}

	return searches, nil
}

func (r *SavedSearchRepositoryImpl) Update(ctx context.Context, search *SavedSearch) error {
	existing, err := r.Get(ctx, search.ID.Hex())
	if err != nil {
		return err
	}

	// Preserve immutable and usage-tracking fields
	search.CreatedAt = existing.CreatedAt
	search.UsageCount = existing.UsageCount
	search.LastUsedAt = existing.LastUsedAt

	search.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": search.ID}, search)
	return err
}

func (r *SavedSearchRepositoryImpl) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SavedSearchRepositoryImpl) RecordUsage(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$inc": bson.M{"usage_count": 1},
		"$set": bson.M{"last_used_at": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
