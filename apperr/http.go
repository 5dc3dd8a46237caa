package apperr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// WriteHTTP renders an error as a JSON response. Anything that is not an
// *Error is treated as internal: logged with its cause, answered with a
// generic message so internals never leak to the client.
func WriteHTTP(w http.ResponseWriter, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("something went wrong").WithCause(err)
	}

	status := appErr.HTTPStatus()
	msg := appErr.Message
	if appErr.Code == CodeInternal {
		slog.Error("request failed", "error", err)
		msg = "something went wrong"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(errorResponse{Error: errorBody{Code: appErr.Code, Message: msg}}); encErr != nil {
		slog.Error("failed to encode error response", "error", encErr)
	}
}
