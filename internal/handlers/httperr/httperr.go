// Package httperr maps engine errors to HTTP status codes.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/pkg/money"
	"github.com/GlebRadaev/funcoin/pkg/utils"
)

const internalMessage = "Internal server error"

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrTransient),
		errors.Is(err, domain.ErrCodeSpaceExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvariantViolation):
		return http.StatusInternalServerError
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrOverflow),
		errors.Is(err, money.ErrUnderflow),
		errors.Is(err, domain.ErrInvalidBet),
		errors.Is(err, domain.ErrInvalidAccountRef),
		errors.Is(err, domain.ErrInvalidVoucherParams):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrVoucherNotFound),
		errors.Is(err, domain.ErrInvalidOrExpiredVoucher):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVoucherExhausted),
		errors.Is(err, domain.ErrPerUserLimitExceeded):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBalanceOverflow),
		errors.Is(err, money.ErrInsufficientDenominations):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with its status. Server-side failures get a generic
// message so storage details never reach the client.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	switch code {
	case http.StatusInternalServerError:
		utils.RespondWithError(w, code, internalMessage)
	case http.StatusServiceUnavailable:
		utils.RespondWithError(w, code, "Temporarily unavailable, retry later")
	default:
		utils.RespondWithError(w, code, err.Error())
	}
}
