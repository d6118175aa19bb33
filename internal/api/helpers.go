package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

const (
	KindValidation     = "Validation Error"
	KindNotFound       = "Not Found"
	KindInvalidRequest = "Invalid Request"
	KindInvalidArg     = "Invalid Argument"
	KindTypeMismatch   = "Type Mismatch"
	KindUnavailable    = "Service Unavailable"
	KindConflict       = "Conflict"
	KindInternal       = "Internal Server Error"
	KindUnauthorized   = "Unauthorized"
)

type ErrorResponse struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, kind string, originErr error, msgToSend string) {
	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "status", code, "error", originErr.Error())
	} else {
		slog.ErrorContext(ctx, "api error", "status", code, "error", msgToSend)
	}

	SendJSON(ctx, w, code, ErrorResponse{
		Status:    code,
		Error:     kind,
		Message:   msgToSend,
		Timestamp: time.Now(),
	})
}

// SendServiceErr maps an error returned by the service layer or the payment
// service client to the matching HTTP status and error payload.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	var remoteErr *entity.RemoteError

	switch {
	case errors.Is(err, entity.ErrValidation):
		SendJSONErr(ctx, w, http.StatusBadRequest, KindValidation, err, detail(err, entity.ErrValidation))
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, KindNotFound, err, err.Error())
	case errors.Is(err, entity.ErrConstraintViolation):
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidRequest, err, detail(err, entity.ErrConstraintViolation))
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidArg, err, detail(err, entity.ErrInvalidArgument))
	case errors.As(err, &remoteErr):
		SendJSONErr(ctx, w, remoteErr.StatusCode, remoteStatusText(remoteErr), err, "Payment service error: "+remoteErr.Body)
	case errors.Is(err, entity.ErrRemoteUnavailable):
		SendJSONErr(ctx, w, http.StatusServiceUnavailable, KindUnavailable, err,
			"Payment service is unreachable. Please try again later.")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, KindInternal, err, "An unexpected error occurred.")
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// detail strips everything up to and including the sentinel text so clients
// see only the human readable part of the message.
func detail(err, sentinel error) string {
	msg := err.Error()

	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}

	return msg
}

func remoteStatusText(e *entity.RemoteError) string {
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}

	return e.Status
}
