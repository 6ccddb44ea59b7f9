package report

import (
	"context"
	"time"

	"go-shipdata/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepository interface {
	Create(ctx context.Context, report *CustomReport) error
	Get(ctx context.Context, id string) (*CustomReport, error)
	List(ctx context.Context) ([]CustomReport, error)
	Update(ctx context.Context, report *CustomReport) error
	Delete(ctx context.Context, id string) error
	RecordRun(ctx context.Context, id string) error
}

type ReportRepositoryImpl struct {
	collection *mongo.Collection
}

func NewReportRepository(db *database.MongodbDB) ReportRepository {
	return &ReportRepositoryImpl{
		collection: db.DB.Collection("custom_reports"),
	}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *CustomReport) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	report.CreatedAt = time.Now()
	report.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, report)
	return err
}

func (r *ReportRepositoryImpl) Get(ctx context.Context, id string) (*CustomReport, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var report CustomReport
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&report)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *ReportRepositoryImpl) List(ctx context.Context) ([]CustomReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []CustomReport
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *ReportRepositoryImpl) Update(ctx context.Context, report *CustomReport) error {
	existing, err := r.Get(ctx, report.ID.Hex())
	if err != nil {
		return err
	}

	// Preserve immutable and run-tracking fields
	report.CreatedAt = existing.CreatedAt
	report.RunCount = existing.RunCount
	report.LastRunAt = existing.LastRunAt

	report.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": report.ID}, report)
	return err
}

func (r *ReportRepositoryImpl) Delete(ctx context.Context, id string) error {
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

func (r *ReportRepositoryImpl) RecordRun(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$inc": bson.M{"run_count": 1},
		"$set": bson.M{"last_run_at": time.Now()},
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}
