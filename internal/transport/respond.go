package transport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Response is the JSON envelope for every API reply.
type Response struct {
	Data  any       `json:"data,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

// WriteData writes a success envelope.
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Data: data})
}

// WriteError maps err and writes an error envelope.
func WriteError(w http.ResponseWriter, logger *slog.Logger, err error) {
	apiErr := MapError(err)
	if apiErr.Status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", "code", apiErr.Code, "error", err)
	}
	writeJSON(w, apiErr.Status, Response{Error: apiErr})
}

func writeJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decodeJSON reads a single JSON value from the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return invalidInput("request body is empty")
		}
		return invalidInput("invalid request body: %v", err)
	}
	return nil
}

// urlParam returns the unescaped path parameter. Documents may carry an
// escaped slash (CNPJ formatting).
func urlParam(r *http.Request, key string) (string, error) {
	raw := chi.URLParam(r, key)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", invalidInput("invalid %s: %v", key, err)
	}
	if v == "" {
		return "", invalidInput("missing %s", key)
	}
	return v, nil
}
