package core

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorBody is the wire shape for single-message error responses.
type ErrorBody struct {
	Error string `json:"error"`
}

const genericFaultMessage = "an unexpected error occurred"

func RequestBody[TRequest any](r *http.Request) (TRequest, error) {
	var request TRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	return request, err
}

type ResponseOption func(http.ResponseWriter, *http.Request)

func WithHeader(header, value string) ResponseOption {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add(header, value)
	}
}

func WriteOK(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusOK, body)
}

func WriteCreated(w http.ResponseWriter, r *http.Request, location string, body interface{}) {
	WriteResponse(w, r, http.StatusCreated, body, WithHeader("Location", location))
}

func WriteNoContent(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, r, http.StatusNoContent, nil)
}

func WriteBadRequest(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusBadRequest, body)
}

func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, r, http.StatusNotFound, nil)
}

func WriteInternalServerError(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, http.StatusInternalServerError, body)
}

// WriteCommandError maps a handler error to its response. Deliberate
// outcomes (4xx CommandError) surface their payload; anything else is a
// fault and gets the generic detail-free body.
func WriteCommandError(w http.ResponseWriter, r *http.Request, err error) {
	commandErr, ok := err.(CommandError)
	if !ok || commandErr.StatusCode >= 500 {
		WriteInternalServerError(w, r, ErrorBody{Error: genericFaultMessage})
		return
	}

	WriteResponse(w, r, commandErr.StatusCode, commandErr.Payload)
}

func WriteResponse(
	w http.ResponseWriter,
	r *http.Request,
	statusCode int,
	body interface{},
	opts ...ResponseOption,
) {
	for _, opt := range opts {
		opt(w, r)
	}

	if body != nil {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(statusCode)
	writeBodyIfPresent(r.Context(), w, body)
}

func writeBodyIfPresent(ctx context.Context, w http.ResponseWriter, body interface{}) {
	if body == nil {
		return
	}

	// Most errors marshal into an empty object. ValidationError is the
	// exception - its field errors are the response contract.
	if err, ok := body.(error); ok {
		if _, structured := err.(ValidationError); !structured {
			body = ErrorBody{Error: err.Error()}
		}
	}

	responseBytes, err := json.Marshal(body)
	if err != nil {
		LogError(ctx, "failed to serialize response body", zap.Error(err))
		return
	}

	if _, err := w.Write(responseBytes); err != nil {
		LogError(ctx, "failed to write response", zap.Error(err))
	}
}
