package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
)

func TestMapDomainErrorSentinels(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantKind   Status
	}{
		{domainErrors.ErrAccountNotSet, http.StatusBadRequest, StatusValidationError},
		{domainErrors.ErrCartEmpty, http.StatusBadRequest, StatusValidationError},
		{domainErrors.ErrNameRequired, http.StatusBadRequest, StatusValidationError},
		{domainErrors.ErrPriceRequired, http.StatusBadRequest, StatusValidationError},
		{domainErrors.ErrItemNotFound, http.StatusNotFound, StatusNotFound},
		{domainErrors.ErrAccountNotFound, http.StatusNotFound, StatusNotFound},
		{domainErrors.ErrSessionNotFound, http.StatusNotFound, StatusNotFound},
		{domainErrors.ErrManagerRequired, http.StatusForbidden, StatusForbidden},
		{domainErrors.ErrSubmissionInFlight, http.StatusConflict, StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			statusCode, body := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, statusCode)
			resp, ok := body.(*ErrorResponse)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, resp.Status)
		})
	}
}

func TestMapDomainErrorMatchesWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("loading session: %w", domainErrors.ErrSessionNotFound)

	statusCode, _ := MapDomainError(wrapped)

	assert.Equal(t, http.StatusNotFound, statusCode)
}

func TestMapDomainErrorCartValidation(t *testing.T) {
	err := &domainErrors.CartValidationError{Lines: []domainErrors.LineDetail{
		{ItemID: "ITM-1", ItemName: "Widget", Reason: "missing unit price"},
		{ItemID: "ITM-2", ItemName: "Gadget", Reason: "missing item reference"},
	}}

	statusCode, body := MapDomainError(err)

	assert.Equal(t, http.StatusBadRequest, statusCode)
	resp, ok := body.(*ValidationErrorResponse)
	require.True(t, ok)
	assert.Equal(t, StatusValidationError, resp.Status)
	assert.Equal(t, map[string]string{
		"Widget": "missing unit price",
		"Gadget": "missing item reference",
	}, resp.Errors)
}

func TestMapDomainErrorRemote(t *testing.T) {
	remote := domainErrors.DecodeRemotePayload("create purchase",
		[]byte(`{"message":"record locked"}`))

	statusCode, body := MapDomainError(remote)

	assert.Equal(t, http.StatusBadGateway, statusCode)
	resp, ok := body.(*ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, StatusRemoteError, resp.Status)
	assert.Equal(t, "record locked", resp.Message)
}

func TestMapDomainErrorFallback(t *testing.T) {
	statusCode, body := MapDomainError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, statusCode)
	resp, ok := body.(*ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, StatusInternalError, resp.Status)
}
