package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"hrms-lite/internal/models"
)

var validate = validator.New()

// Explicit per-entity validation, independent of the HTTP binding layer.

func ValidateCreateEmployee(in models.CreateEmployeeInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}

func ValidateUpdateEmployee(in models.UpdateEmployeeInput) error {
	if in.Empty() {
		return fmt.Errorf("%w: no fields to update", models.ErrValidation)
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}

func ValidateMarkAttendance(in models.MarkAttendanceInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}

func ValidateNotificationType(kind models.NotificationType) error {
	switch kind {
	case models.NotifyInfo, models.NotifyWarning, models.NotifyError, models.NotifySuccess:
		return nil
	}
	return fmt.Errorf("%w: unknown notification type %q", models.ErrValidation, kind)
}
