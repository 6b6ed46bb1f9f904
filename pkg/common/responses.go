package common

import (
	"encoding/json"
	"net/http"
	"reflect"

	apperrors "artgraph-backend/pkg/errors"
)

// The wire envelope is fixed by existing clients. Success responses carry
// a "messages" field, error responses carry "message" (singular); the
// asymmetry is intentional and must not be normalized at the boundary.

type successEnvelope struct {
	Success  bool   `json:"success"`
	Length   int    `json:"length"`
	Status   int    `json:"status"`
	Messages string `json:"messages"`
	Data     any    `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Length  int    `json:"length"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// dataLength mirrors the envelope's length field: element count for
// collections and maps, 0 for nil, 1 for any other payload.
func dataLength(data any) int {
	if data == nil {
		return 0
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return v.Len()
	case reflect.Ptr:
		if v.IsNil() {
			return 0
		}
		return dataLength(v.Elem().Interface())
	}
	return 1
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// RespondSuccess sends a success envelope.
func RespondSuccess(w http.ResponseWriter, status int, messages string, data any) {
	writeJSON(w, status, successEnvelope{
		Success:  true,
		Length:   dataLength(data),
		Status:   status,
		Messages: messages,
		Data:     data,
	})
}

// RespondError sends an error envelope with a null data field.
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{
		Success: false,
		Length:  0,
		Status:  status,
		Message: message,
	})
}

// RespondAppError maps a service error onto the error envelope. Internal
// and database failures collapse to a generic message so no store detail
// reaches the client.
func RespondAppError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatusOf(err)
	message := "An unexpected error occurred. Please try again later."
	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation, apperrors.ErrorTypeNotFound:
			message = appErr.Message
		}
	}
	RespondError(w, status, message)
}
