package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-lite/internal/models"
)

type MongoNotificationRepository struct {
	col *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{col: db.Collection(notificationsCollection)}
}

func (r *MongoNotificationRepository) Insert(ctx context.Context, n *models.Notification) error {
	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return storeErr("insert notification", err)
	}
	n.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoNotificationRepository) FindRecent(ctx context.Context, limit int64) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list notifications", err)
	}
	notifications := make([]models.Notification, 0)
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, storeErr("decode notifications", err)
	}
	return notifications, nil
}

func (r *MongoNotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"is_read": false})
	if err != nil {
		return 0, storeErr("count unread notifications", err)
	}
	return n, nil
}

func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a record.
		return false, nil
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return false, storeErr("mark notification read", err)
	}
	return res.MatchedCount == 1, nil
}

func (r *MongoNotificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"is_read": false}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return storeErr("mark all notifications read", err)
	}
	return nil
}
