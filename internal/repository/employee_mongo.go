package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-lite/internal/models"
)

type MongoEmployeeRepository struct {
	col *mongo.Collection
}

func NewMongoEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{col: db.Collection(employeesCollection)}
}

func (r *MongoEmployeeRepository) Insert(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("employee %s: %w", e.EmployeeID, models.ErrConflict)
		}
		return nil, storeErr("insert employee", err)
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return e, nil
}

func (r *MongoEmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var e models.Employee
	err := r.col.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("employee %s: %w", employeeID, models.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("find employee", err)
	}
	return &e, nil
}

func (r *MongoEmployeeRepository) FindAll(ctx context.Context, limit int64) ([]models.Employee, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, storeErr("list employees", err)
	}
	employees := make([]models.Employee, 0)
	if err := cur.All(ctx, &employees); err != nil {
		return nil, storeErr("decode employees", err)
	}
	return employees, nil
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, employeeID string, in models.UpdateEmployeeInput) (*models.Employee, error) {
	set := bson.M{}
	if in.FullName != nil {
		set["full_name"] = *in.FullName
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Department != nil {
		set["department"] = *in.Department
	}
	var e models.Employee
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"employee_id": employeeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("employee %s: %w", employeeID, models.ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("update employee", err)
	}
	return &e, nil
}

func (r *MongoEmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return storeErr("delete employee", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, models.ErrNotFound)
	}
	return nil
}

func (r *MongoEmployeeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeErr("count employees", err)
	}
	return n, nil
}
