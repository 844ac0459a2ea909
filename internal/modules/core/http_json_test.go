package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_WriteCommandError_Surfaces_Validation_Errors_As_Structured_Body(t *testing.T) {
	// Arrange
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/products", nil)

	validationErr := ValidationError{Errors: []FieldError{
		{PropertyName: "Name", ErrorMessage: "name must not be empty"},
	}}
	commandErr := NewCommandError(http.StatusBadRequest, validationErr)

	// Act
	WriteCommandError(recorder, request, commandErr)

	// Assert
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Errors []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, validationErr.Errors, body.Errors)
}

func Test_WriteCommandError_Never_Leaks_Fault_Details(t *testing.T) {
	// Arrange
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/products", nil)

	storeErr := errors.New("pq: connection refused on host db-internal:5432")

	// Act
	WriteCommandError(recorder, request, NewCommandError(http.StatusInternalServerError, storeErr))

	// Assert
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.NotContains(t, recorder.Body.String(), "db-internal")
	require.JSONEq(t, `{"error": "an unexpected error occurred"}`, recorder.Body.String())
}

func Test_WriteCommandError_Treats_Plain_Errors_As_Faults(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/products", nil)

	WriteCommandError(recorder, request, errors.New("boom"))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.NotContains(t, recorder.Body.String(), "boom")
}

func Test_WriteResponse_Writes_No_Body_For_Nil(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/products/1", nil)

	WriteResponse(recorder, request, http.StatusNoContent, nil)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Empty(t, recorder.Body.Bytes())
}
