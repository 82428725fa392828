package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhub/booking-system/internal/core/domain"
)

const activityCollection = "activity_log"

// MongoActivityRepository appends audit-trail entries. The collection is
// write-only from the application's perspective.
type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

func (r *MongoActivityRepository) Record(ctx context.Context, entry *domain.ActivityEntry) error {
	doc := bson.M{
		"type":       entry.Type,
		"actor_id":   entry.ActorID,
		"subject_id": entry.SubjectID,
		"timestamp":  entry.Timestamp.UTC(),
	}
	if entry.Detail != "" {
		doc["detail"] = entry.Detail
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}
