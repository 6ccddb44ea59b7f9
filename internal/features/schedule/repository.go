package schedule

import (
	"context"
	"time"

	"go-shipdata/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *ScheduledReport) error
	Get(ctx context.Context, id string) (*ScheduledReport, error)
	List(ctx context.Context) ([]ScheduledReport, error)
	ListActive(ctx context.Context) ([]ScheduledReport, error)
	Update(ctx context.Context, schedule *ScheduledReport) error
	Delete(ctx context.Context, id string) error
	DeleteByReport(ctx context.Context, reportID string) ([]string, error)
	RecordRun(ctx context.Context, id string, nextRun time.Time) error
}

type ScheduleRepositoryImpl struct {
	collection *mongo.Collection
}

func NewScheduleRepository(db *database.MongodbDB) ScheduleRepository {
	return &ScheduleRepositoryImpl{
		collection: db.DB.Collection("scheduled_reports"),
	}
}

func (r *ScheduleRepositoryImpl) Create(ctx context.Context, schedule *ScheduledReport) error {
	if schedule.ID.IsZero() {
		schedule.ID = primitive.NewObjectID()
	}
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, schedule)
	return err
}

func (r *ScheduleRepositoryImpl) Get(ctx context.Context, id string) (*ScheduledReport, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var schedule ScheduledReport
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&schedule)
	if err != nil {
		return nil, err
	}

	return &schedule, nil
}

func (r *ScheduleRepositoryImpl) List(ctx context.Context) ([]ScheduledReport, error) {
	return r.find(ctx, bson.M{})
}

func (r *ScheduleRepositoryImpl) ListActive(ctx context.Context) ([]ScheduledReport, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *ScheduleRepositoryImpl) find(ctx context.Context, filter bson.M) ([]ScheduledReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []ScheduledReport
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleRepositoryImpl) Update(ctx context.Context, schedule *ScheduledReport) error {
	existing, err := r.Get(ctx, schedule.ID.Hex())
	if err != nil {
		return err
	}

	schedule.CreatedAt = existing.CreatedAt
	schedule.LastRunAt = existing.LastRunAt

	schedule.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": schedule.ID}, schedule)
	return err
}

func (r *ScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
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

// DeleteByReport removes every schedule bound to the given report and
// returns the removed ids so the caller can unregister the cron entries.
func (r *ScheduleRepositoryImpl) DeleteByReport(ctx context.Context, reportID string) ([]string, error) {
	objID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, err
	}

	schedules, err := r.find(ctx, bson.M{"report_id": objID})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(schedules))
	for _, sched := range schedules {
		ids = append(ids, sched.ID.Hex())
	}

	_, err = r.collection.DeleteMany(ctx, bson.M{"report_id": objID})
	return ids, err
}

func (r *ScheduleRepositoryImpl) RecordRun(ctx context.Context, id string, nextRun time.Time) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"last_run_at": time.Now(),
			"next_run":    nextRun,
		},
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}
