package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/islasuds/wholesale/internal/service/services/portalsvc"
)

// service is an interface for the service layer.
type service interface {
	Register(ctx context.Context, form portalsvc.RegistrationForm) portalsvc.RegistrationResult
}

type formField struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

var formFields = []formField{
	{Name: "name", Required: true},
	{Name: "email", Required: true},
	{Name: "phone", Required: true},
	{Name: "businessName", Required: true},
	{Name: "message", Required: true},
}

// HandleForm describes the public application form for the rendering surface.
func HandleForm(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"fields": formFields}); err != nil {
		slog.Error("Error sending response for register form", "error", err)
	}
}

// Handle accepts a wholesale application submission. Validation failures come
// back as per-field messages with a 200 status; the rejection is domain-level,
// not HTTP-level.
func Handle(w http.ResponseWriter, r *http.Request, service service) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error parsing register form", "error", err)

		return
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	form := portalsvc.RegistrationForm{}
	if err := decoder.Decode(&form, r.PostForm); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding register form", "error", err)

		return
	}

	result := service.Register(r.Context(), form)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("Error sending response for register", "error", err)
	}
}
