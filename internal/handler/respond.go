package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/Dan9191/waste-service/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

type errorResponse struct {
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError maps an error kind to its status code. Unclassified errors become 500
// and their cause is logged, never returned.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var status int
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	default:
		h.log.WithField("path", r.URL.Path).Errorf("%s: %v", fallback, err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Message: fallback})
		return
	}
	respondJSON(w, status, errorResponse{
		Message: apperr.Message(err, http.StatusText(status)),
		Errors:  apperr.Fields(err),
	})
}

// decodeJSON reads the body into dst and runs its validate tags
func decodeJSON(r *http.Request, dst any, msg string) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperr.Validation(msg, formatValidationErrors(verrs)...)
		}
		return apperr.Validation(msg)
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) []apperr.FieldError {
	fields := make([]apperr.FieldError, 0, len(errs))
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "lte", "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("%s failed the %s check", err.Field(), err.Tag())
		}
		fields = append(fields, apperr.FieldError{Field: err.Field(), Message: message})
	}
	return fields
}

// pathID parses a positive integer path variable
func pathID(r *http.Request, key, label string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(fmt.Sprintf("Invalid %s ID", label))
	}
	return id, nil
}

// queryID parses a required positive integer query parameter
func queryID(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, apperr.Validation(fmt.Sprintf("%s is required", key), apperr.FieldError{Field: key, Message: "required"})
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(fmt.Sprintf("Invalid %s", key), apperr.FieldError{Field: key, Message: "must be a positive integer"})
	}
	return id, nil
}

// queryLimit returns 0 when the parameter is absent so the caller's default applies
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, apperr.Validation("Invalid limit", apperr.FieldError{Field: "limit", Message: "must be a positive integer"})
	}
	return limit, nil
}

// queryFloat parses an optional float parameter; ok is false when it is absent
func queryFloat(r *http.Request, keys ...string) (v float64, ok bool, err error) {
	for _, key := range keys {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		v, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false, apperr.Validation(fmt.Sprintf("Invalid %s", key), apperr.FieldError{Field: key, Message: "must be a number"})
		}
		return v, true, nil
	}
	return 0, false, nil
}

// parseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates
func parseDate(raw, field string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.Validation(fmt.Sprintf("Invalid %s", field),
		apperr.FieldError{Field: field, Message: "must be an ISO 8601 date"})
}

// queryDate parses an optional date parameter, zero when absent
func queryDate(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	return parseDate(raw, key)
}
