package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"taskhive/backend/internal/apperror"
)

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Type     apperror.Kind  `json:"type"`
	Stack    string         `json:"stack,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Path     string         `json:"path,omitempty"`
	Method   string         `json:"method,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// writeError is the single boundary converting raised errors into transport
// responses. Unknown errors are coerced to INTERNAL_SERVER_ERROR; debugging
// detail is included only outside production.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)

	if appErr.Status >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", r.Method, r.URL.Path, errorChain(appErr))
	}

	resp := errorResponse{
		Success: false,
		Message: appErr.Message,
		Type:    appErr.Kind,
	}
	if !s.isProd {
		resp.Stack = errorChain(appErr)
		resp.Metadata = appErr.Metadata
		resp.Path = r.URL.Path
		resp.Method = r.Method
	}

	writeJSON(w, appErr.Status, resp)
}

// errorChain renders the error and its unwrapped causes for the debug
// envelope.
func errorChain(err error) string {
	var parts []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, ": ")
}

// handlerFunc is a request handler that reports failure by returning an
// error instead of writing the response itself.
type handlerFunc func(http.ResponseWriter, *http.Request) error

// handle adapts a handlerFunc into an http.Handler, funnelling every returned
// error through the single response boundary.
func (s *Server) handle(h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) error {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	return &apperror.Error{
		Message: "Method not allowed",
		Status:  http.StatusMethodNotAllowed,
		Kind:    apperror.KindBadRequest,
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperror.BadRequest("Invalid JSON payload")
	}
	return nil
}
