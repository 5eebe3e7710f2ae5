package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_MapsErrorKindsToStatusCodes(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"unauthorized", errs.NewUnauthorizedError("missing session token"), http.StatusUnauthorized},
		{"forbidden", errs.NewForbiddenError("role customer is not permitted"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", kernel.NewUUID()), http.StatusNotFound},
		{"insufficient stock", product.InsufficientStockError{
			ProductID: kernel.NewUUID(), Requested: 5, Available: 2,
		}, http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("deliveryAddress"), http.StatusBadRequest},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := echo.New().NewContext(req, rec)

			require.NoError(t, writeError(ctx, test.err))

			assert.Equal(t, test.expectedCode, rec.Code)

			var body Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, test.expectedCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteError_InternalErrorsDoNotLeakDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	require.NoError(t, writeError(ctx, errors.New("dial tcp 10.0.0.5:5432: connection refused")))

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, body.Message, "10.0.0.5")
}
