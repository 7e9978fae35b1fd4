package portalsvc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/islasuds/wholesale/internal/service/models/application"
)

// RegistrationForm is the public wholesale application form.
type RegistrationForm struct {
	Name         string `json:"name" schema:"name" validate:"required"`
	Email        string `json:"email" schema:"email" validate:"required,email"`
	Phone        string `json:"phone" schema:"phone" validate:"required"`
	BusinessName string `json:"businessName" schema:"businessName" validate:"required"`
	Message      string `json:"message" schema:"message" validate:"required"`
}

// RegistrationResult is a domain-level accept/reject: the HTTP request itself
// succeeds either way, with per-field messages on rejection.
type RegistrationResult struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Register validates a wholesale application and queues it for the CRM.
func (s *PortalService) Register(ctx context.Context, form RegistrationForm) RegistrationResult {
	if err := s.validate.Struct(form); err != nil {
		return RegistrationResult{Success: false, Errors: fieldErrors(err)}
	}

	app := application.Application{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		BusinessName: form.BusinessName,
		Message:      form.Message,
	}

	id, err := s.applications.Insert(ctx, app)
	if err != nil {
		slog.Error("failed to store wholesale application", "error", err)

		return RegistrationResult{
			Success: false,
			Errors:  map[string]string{"form": "Something went wrong. Please try again."},
		}
	}

	slog.Info("wholesale application received", "application_id", id, "business", form.BusinessName)

	return RegistrationResult{Success: true}
}

func fieldErrors(err error) map[string]string {
	result := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		result["form"] = "Invalid submission."

		return result
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "email":
			result[fe.Field()] = "Enter a valid email address."
		default:
			result[fe.Field()] = "This field is required."
		}
	}

	return result
}
