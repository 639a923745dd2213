package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/middlewares"
	"github.com/sbilibin2017/podcast-network/internal/models"
)

const (
	maxJSONBodyBytes = 1 << 20

	detailInternal     = "Internal server error"
	detailInvalidJSON  = "Invalid JSON body"
	detailUnauthorized = "Invalid authentication credentials"
)

// ErrorResponse is the body of every error reply.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable error
	// default: Internal server error
	Detail string `json:"detail"`
}

// MessageResponse is a plain confirmation.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("maxbytes", maxBytes)
	return v
}

// maxBytes limits the UTF-8 encoded length of a string, unlike max which
// counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeInternalError(w http.ResponseWriter, msg string, err error) {
	logger.Log.Errorw(msg, "error", err)
	writeError(w, http.StatusInternalServerError, detailInternal)
}

// decodeJSON reads a JSON body into dst and validates it. On failure it
// writes 400 for unreadable JSON or 422 for invalid fields and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var (
			syntaxErr *json.SyntaxError
			typeErr   *json.UnmarshalTypeError
			sizeErr   *http.MaxBytesError
		)
		switch {
		case errors.As(err, &typeErr):
			writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("%s: invalid type, expected %s", typeErr.Field, typeErr.Type))
		case errors.As(err, &sizeErr):
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			writeError(w, http.StatusBadRequest, detailInvalidJSON)
		default:
			writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid field value: %v", err))
		}
		return false
	}

	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
		return false
	}
	return true
}

// validationDetail describes the first failing field.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s: field required", fe.Field())
	case "email":
		return fmt.Sprintf("%s: value is not a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s: must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s: must be at most %s bytes", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s: must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}

// currentUser returns the authenticated user, replying 401 when there is none.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, detailUnauthorized)
		return models.User{}, false
	}
	return user, true
}

// pathID parses the {id} URL parameter. Ids that are not UUIDs cannot exist,
// so they get the same 404 as a missing resource.
func pathID(w http.ResponseWriter, r *http.Request, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}
