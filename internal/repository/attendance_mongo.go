package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-lite/internal/models"
)

type MongoAttendanceRepository struct {
	col *mongo.Collection
}

func NewMongoAttendanceRepository(db *mongo.Database) *MongoAttendanceRepository {
	return &MongoAttendanceRepository{col: db.Collection(attendanceCollection)}
}

func (r *MongoAttendanceRepository) Upsert(ctx context.Context, a *models.Attendance) (*models.Attendance, bool, error) {
	filter := bson.M{"employee_id": a.EmployeeID, "date": a.Date}
	update := bson.M{
		"$set":         bson.M{"status": a.Status, "marked_at": a.MarkedAt},
		"$setOnInsert": bson.M{"employee_id": a.EmployeeID, "date": a.Date},
	}
	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, storeErr("upsert attendance", err)
	}
	var stored models.Attendance
	if err := r.col.FindOne(ctx, filter).Decode(&stored); err != nil {
		return nil, false, storeErr("read back attendance", err)
	}
	return &stored, res.UpsertedCount == 1, nil
}

func (r *MongoAttendanceRepository) FindByEmployee(ctx context.Context, employeeID string, limit int64) ([]models.Attendance, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, storeErr("find attendance by employee", err)
	}
	records := make([]models.Attendance, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, storeErr("decode attendance", err)
	}
	return records, nil
}

func (r *MongoAttendanceRepository) FindByDate(ctx context.Context, date string, limit int64) ([]models.Attendance, error) {
	cur, err := r.col.Find(ctx, bson.M{"date": date}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, storeErr("find attendance by date", err)
	}
	records := make([]models.Attendance, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, storeErr("decode attendance", err)
	}
	return records, nil
}

func (r *MongoAttendanceRepository) CountByDateStatus(ctx context.Context, date string, status models.AttendanceStatus) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, storeErr("count attendance", err)
	}
	return n, nil
}

func (r *MongoAttendanceRepository) FindRecentlyMarked(ctx context.Context, limit int64) ([]models.Attendance, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "marked_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("find recent attendance", err)
	}
	records := make([]models.Attendance, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, storeErr("decode attendance", err)
	}
	return records, nil
}

func (r *MongoAttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, storeErr("delete attendance by employee", err)
	}
	return res.DeletedCount, nil
}
