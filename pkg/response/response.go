package response

import (
	"encoding/json"
	"net/http"

	"go-hostel-pms/pkg/apperr"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ErrorBody carries the structured error contract: a machine-readable kind
// and, for conflicts, the overlapping ranges with their origin.
type ErrorBody struct {
	Kind      apperr.Kind             `json:"kind"`
	Conflicts []apperr.ConflictDetail `json:"conflicts,omitempty"`
	Fields    map[string]string       `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, errors map[string]string) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   &ErrorBody{Kind: apperr.KindValidation, Fields: errors},
	})
}

// AppError maps a structured core error to its transport status. Unknown
// errors fall through to a 500 without leaking internals.
func AppError(w http.ResponseWriter, err error) {
	e := apperr.AsError(err)
	if e == nil {
		InternalServerError(w, "Internal server error")
		return
	}

	body := &ErrorBody{Kind: e.Kind, Conflicts: e.Conflicts}
	switch e.Kind {
	case apperr.KindNotFound:
		Error(w, http.StatusNotFound, e.Message, body)
	case apperr.KindInvalidState, apperr.KindConflict:
		Error(w, http.StatusConflict, e.Message, body)
	case apperr.KindValidation:
		Error(w, http.StatusBadRequest, e.Message, body)
	default:
		InternalServerError(w, "Internal server error")
	}
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message, nil)
}
