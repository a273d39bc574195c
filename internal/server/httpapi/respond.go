package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/go-playground/validator/v10"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}

// writeError maps service errors to HTTP statuses. Unexpected errors are
// logged and reported without detail.
func (h *handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeErrorCode(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, common.ErrInvalidCredentials):
		writeErrorCode(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrTokenRevoked),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrorUnauthorized):
		writeErrorCode(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, common.ErrInvalidPassword):
		writeErrorCode(w, http.StatusBadRequest, "invalid_password", err.Error())
	case errors.Is(err, common.ErrValidation):
		writeErrorCode(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, common.ErrConflict):
		writeErrorCode(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, common.ErrForbidden):
		writeErrorCode(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		h.logger.Error(ctx, "request failed", "error", err)
		writeErrorCode(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// decode reads a JSON body into dst and validates its struct tags.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", common.ErrValidation)
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: invalid %s", common.ErrValidation, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
