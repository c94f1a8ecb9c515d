package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the wire format for attendance dates.
const DateLayout = "2006-01-02"

type Employee struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID string             `json:"employee_id" bson:"employee_id"`
	FullName   string             `json:"full_name" bson:"full_name"`
	Email      string             `json:"email" bson:"email"`
	Department string             `json:"department" bson:"department"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

type CreateEmployeeInput struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department"`
}

type UpdateEmployeeInput struct {
	FullName   *string `json:"full_name" validate:"omitempty,min=1"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Department *string `json:"department"`
}

// Empty reports whether the update carries no fields at all.
func (in UpdateEmployeeInput) Empty() bool {
	return in.FullName == nil && in.Email == nil && in.Department == nil
}
