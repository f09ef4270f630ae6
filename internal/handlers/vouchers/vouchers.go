package vouchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/dto"
	"github.com/GlebRadaev/funcoin/internal/handlers/httperr"
	"github.com/GlebRadaev/funcoin/internal/service/voucherservice"
	"github.com/GlebRadaev/funcoin/pkg/utils"
)

type Service interface {
	Issue(ctx context.Context, p voucherservice.IssueParams) (*voucherservice.IssuedVoucher, error)
	Lookup(ctx context.Context, code string) (*domain.Voucher, error)
	State(v *domain.Voucher) domain.VoucherState
	SetActive(ctx context.Context, code string, active bool) error
	ListRecent(ctx context.Context, limit int) ([]domain.Voucher, error)
}

const maxBonusPercent = 1000

type VoucherHandler struct {
	voucherService Service
}

func New(voucherService Service) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
	}
}

// Issue godoc
//
//	@Summary		Issue a voucher
//	@Description	Create a prepaid voucher with a fresh Luhn-checked code. The bonus defaults to the configured percentage of the amount.
//	@Tags			Vouchers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.IssueVoucherRequestDTO	true	"Voucher parameters"
//	@Success		201		{object}	dto.VoucherResponseDTO		"Issued voucher"
//	@Failure		400		{object}	utils.Response				"Invalid amount or parameters"
//	@Failure		503		{object}	utils.Response				"Code space exhausted or storage busy"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/vouchers [post]
func (h *VoucherHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueVoucherRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := dto.AmountRequestDTO{Amount: req.Amount}.ToAmount()
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	params := voucherservice.IssueParams{
		Amount:         amount,
		MaxRedemptions: req.MaxRedemptions,
		PerUserLimit:   req.PerUserLimit,
		ExpiresAt:      req.ExpiresAt,
	}
	if req.BonusPercent != nil {
		if *req.BonusPercent < 0 || *req.BonusPercent > maxBonusPercent {
			httperr.Respond(w, fmt.Errorf("%w: bonus percent %d", domain.ErrInvalidVoucherParams, *req.BonusPercent))
			return
		}
		params.Bonus = voucherservice.PercentBonus(*req.BonusPercent)
	}

	issued, err := h.voucherService.Issue(r.Context(), params)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	resp := dto.NewVoucherResponse(issued.Voucher, h.voucherService.State(issued.Voucher))
	resp.RedeemURL = issued.RedeemURL
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// List godoc
//
//	@Summary		List recent vouchers
//	@Tags			Vouchers
//	@Produce		json
//	@Param			limit	query		int						false	"Page size, 25 by default, at most 100"
//	@Success		200		{array}		dto.VoucherResponseDTO	"Newest vouchers first"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/vouchers [get]
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	vouchers, err := h.voucherService.ListRecent(r.Context(), limit)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.VoucherResponseDTO, len(vouchers))
	for i := range vouchers {
		response[i] = dto.NewVoucherResponse(&vouchers[i], h.voucherService.State(&vouchers[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Look up a voucher
//	@Tags			Vouchers
//	@Produce		json
//	@Param			code	path		string					true	"Voucher code"
//	@Success		200		{object}	dto.VoucherResponseDTO	"Voucher with its current state"
//	@Failure		404		{object}	utils.Response			"Voucher not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/vouchers/{code} [get]
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.voucherService.Lookup(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewVoucherResponse(v, h.voucherService.State(v)))
}

// Activate godoc
//
//	@Summary	Reactivate a voucher
//	@Tags		Vouchers
//	@Param		code	path	string	true	"Voucher code"
//	@Success	204		"Voucher active"
//	@Failure	404		{object}	utils.Response	"Voucher not found"
//	@Router		/api/vouchers/{code}/activate [post]
func (h *VoucherHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// Deactivate godoc
//
//	@Summary	Deactivate a voucher
//	@Tags		Vouchers
//	@Param		code	path	string	true	"Voucher code"
//	@Success	204		"Voucher inactive"
//	@Failure	404		{object}	utils.Response	"Voucher not found"
//	@Router		/api/vouchers/{code}/deactivate [post]
func (h *VoucherHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *VoucherHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	if err := h.voucherService.SetActive(r.Context(), chi.URLParam(r, "code"), active); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
