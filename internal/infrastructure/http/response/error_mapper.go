package response

import (
	"errors"
	"net/http"

	domainErrors "github.com/avolkov/storefront-service/internal/domain/errors"
)

type ErrorMapping struct {
	HTTPStatus int
	Status     Status
	Message    string
}

var errorMappings = map[error]ErrorMapping{
	domainErrors.ErrAccountNotSet: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Account not set",
	},
	domainErrors.ErrAccountNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Account not found",
	},
	domainErrors.ErrCartEmpty: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Cart is empty",
	},
	domainErrors.ErrItemNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Item not found",
	},
	domainErrors.ErrNameRequired: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Name required",
	},
	domainErrors.ErrPriceRequired: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Price required",
	},
	domainErrors.ErrSessionNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Session not found",
	},
	domainErrors.ErrManagerRequired: {
		HTTPStatus: http.StatusForbidden,
		Status:     StatusForbidden,
		Message:    "Manager permission required",
	},
	domainErrors.ErrSubmissionInFlight: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "A submission is already in progress",
	},
}

func MapDomainError(err error) (int, interface{}) {
	for domainErr, mapping := range errorMappings {
		if errors.Is(err, domainErr) {
			return mapping.HTTPStatus, Error(mapping.Status, mapping.Message, err.Error())
		}
	}

	var cartErr *domainErrors.CartValidationError
	if errors.As(err, &cartErr) {
		fieldErrors := make(map[string]string, len(cartErr.Lines))
		for _, line := range cartErr.Lines {
			fieldErrors[line.ItemName] = line.Reason
		}
		return http.StatusBadRequest, &ValidationErrorResponse{
			Status:  StatusValidationError,
			Message: "Cart validation failed",
			Errors:  fieldErrors,
		}
	}

	var remoteErr *domainErrors.RemoteError
	if errors.As(err, &remoteErr) {
		return http.StatusBadGateway, Error(StatusRemoteError, remoteErr.UserMessage(), remoteErr.Error())
	}

	return http.StatusInternalServerError, Error(StatusInternalError, "Internal server error", err.Error())
}

func WriteDomainError(w http.ResponseWriter, err error) {
	statusCode, errorResponse := MapDomainError(err)
	WriteJSON(w, statusCode, errorResponse)
}
