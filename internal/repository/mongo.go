package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-lite/internal/models"
)

const (
	employeesCollection     = "employees"
	attendanceCollection    = "attendance"
	notificationsCollection = "notifications"
)

// EnsureIndexes creates the uniqueness backstops behind the friendly
// duplicate checks in the services: one employee per business key and
// one attendance row per employee per day.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(employeesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("employees index: %w", err)
	}
	_, err = db.Collection(attendanceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("attendance index: %w", err)
	}
	return nil
}

// storeErr classifies an unexpected driver error as a store failure so
// callers can surface it as such.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrStoreUnavailable, op, err)
}
