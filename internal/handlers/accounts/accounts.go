package accounts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/dto"
	"github.com/GlebRadaev/funcoin/internal/handlers/httperr"
	ledgerrepo "github.com/GlebRadaev/funcoin/internal/repo/ledger-repo"
	"github.com/GlebRadaev/funcoin/pkg/money"
	"github.com/GlebRadaev/funcoin/pkg/utils"
)

type Service interface {
	OpenAccount(ctx context.Context, ref string) (*domain.Account, bool, error)
	GetBalance(ctx context.Context, ref string) (money.Amount, error)
	History(ctx context.Context, ref string, limit int, beforeSeq int64) ([]domain.LedgerEntry, error)
	RedeemVoucher(ctx context.Context, code, ref string) (*domain.RedemptionResult, error)
	PlaceBet(ctx context.Context, ref string, bet money.Amount) (*domain.Movement, error)
	SettleWin(ctx context.Context, ref string, win money.Amount) (*domain.Movement, error)
	CashOut(ctx context.Context, ref string) (*domain.Movement, error)
	Decompose(amount money.Amount, inventory money.Inventory) (money.Breakdown, error)
}

type AccountHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
	}
}

// Open godoc
//
//	@Summary		Open a player account
//	@Description	Provision a wallet with a zero balance. Opening an existing account is not an error.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OpenAccountRequestDTO	true	"Account reference"
//	@Success		201		{object}	dto.AccountResponseDTO		"Account created"
//	@Success		200		{object}	dto.AccountResponseDTO		"Account already existed"
//	@Failure		400		{object}	utils.Response				"Invalid account reference"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, created, err := h.ledgerService.OpenAccount(r.Context(), req.AccountRef)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	utils.RespondWithJSON(w, code, dto.AccountResponseDTO{
		AccountRef: account.Ref,
		Balance:    account.Balance.String(),
		CreatedAt:  account.CreatedAt,
	})
}

// GetBalance godoc
//
//	@Summary	Get account balance
//	@Tags		Accounts
//	@Produce	json
//	@Param		ref	path		string					true	"Account reference"
//	@Success	200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure	404	{object}	utils.Response			"Account not found"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/accounts/{ref}/balance [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	balance, err := h.ledgerService.GetBalance(r.Context(), ref)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(ref, balance))
}

// History godoc
//
//	@Summary		Get ledger history
//	@Description	Newest entries first. Pass nextBefore from a full page as before to continue.
//	@Tags			Accounts
//	@Produce		json
//	@Param			ref		path		string					true	"Account reference"
//	@Param			limit	query		int						false	"Page size, 50 by default, at most 200"
//	@Param			before	query		int						false	"Return entries older than this sequence number"
//	@Success		200		{object}	dto.HistoryResponseDTO	"Ledger entries"
//	@Success		204		"No entries"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{ref}/history [get]
func (h *AccountHandler) History(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, err := intParam(query.Get("limit"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	before, err := intParam(query.Get("before"))
	if err != nil || before < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid before")
		return
	}

	pageSize := ledgerrepo.ClampLimit(int(limit))
	entries, err := h.ledgerService.History(r.Context(), chi.URLParam(r, "ref"), pageSize, before)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewHistoryResponse(entries, pageSize))
}

// Redeem godoc
//
//	@Summary		Redeem a voucher
//	@Description	Credit the voucher's amount plus bonus to the account.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			ref		path		string					true	"Account reference"
//	@Param			request	body		dto.RedeemRequestDTO	true	"Voucher code"
//	@Success		200		{object}	dto.RedeemResponseDTO	"New balance"
//	@Failure		404		{object}	utils.Response			"Invalid or expired voucher, or unknown account"
//	@Failure		409		{object}	utils.Response			"Voucher exhausted or per-user limit reached"
//	@Failure		503		{object}	utils.Response			"Storage busy, retry"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{ref}/redeem [post]
func (h *AccountHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.ledgerService.RedeemVoucher(r.Context(), req.Code, chi.URLParam(r, "ref"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	resp := dto.RedeemResponseDTO{
		Balance:   result.Balance.String(),
		Credited:  result.Credited.String(),
		Remaining: result.Remaining,
	}
	if result.Entry != nil {
		resp.EntryID = result.Entry.ID
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PlaceBet godoc
//
//	@Summary	Place a bet
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		ref		path		string						true	"Account reference"
//	@Param		request	body		dto.AmountRequestDTO		true	"Bet amount"
//	@Success	200		{object}	dto.MovementResponseDTO		"Balance after the bet"
//	@Failure	400		{object}	utils.Response				"Invalid bet"
//	@Failure	402		{object}	utils.Response				"Insufficient funds"
//	@Failure	404		{object}	utils.Response				"Account not found"
//	@Failure	500		{object}	utils.Response				"Internal server error"
//	@Router		/api/accounts/{ref}/bets [post]
func (h *AccountHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.ledgerService.PlaceBet)
}

// SettleWin godoc
//
//	@Summary	Settle a win
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		ref		path		string						true	"Account reference"
//	@Param		request	body		dto.AmountRequestDTO		true	"Win amount, zero allowed"
//	@Success	200		{object}	dto.MovementResponseDTO		"Balance after the win"
//	@Failure	400		{object}	utils.Response				"Invalid amount"
//	@Failure	404		{object}	utils.Response				"Account not found"
//	@Failure	422		{object}	utils.Response				"Balance would exceed the maximum"
//	@Failure	500		{object}	utils.Response				"Internal server error"
//	@Router		/api/accounts/{ref}/wins [post]
func (h *AccountHandler) SettleWin(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.ledgerService.SettleWin)
}

func (h *AccountHandler) move(w http.ResponseWriter, r *http.Request, apply func(context.Context, string, money.Amount) (*domain.Movement, error)) {
	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := req.ToAmount()
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	m, err := apply(r.Context(), chi.URLParam(r, "ref"), amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMovementResponse(m))
}

// CashOut godoc
//
//	@Summary		Cash out
//	@Description	Pay out the whole balance and report the coins to hand over.
//	@Tags			Accounts
//	@Produce		json
//	@Param			ref	path		string					true	"Account reference"
//	@Success		200	{object}	dto.CashOutResponseDTO	"Paid amount and denominations"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{ref}/cashout [post]
func (h *AccountHandler) CashOut(w http.ResponseWriter, r *http.Request) {
	m, err := h.ledgerService.CashOut(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	resp := dto.CashOutResponseDTO{MovementResponseDTO: dto.NewMovementResponse(m)}
	if m.Amount > 0 {
		breakdown, err := h.ledgerService.Decompose(m.Amount, nil)
		if err != nil {
			// The payout is committed; only the coin hint is missing.
			zap.L().Warn("cashout amount does not decompose", zap.Stringer("amount", m.Amount), zap.Error(err))
		} else {
			resp.Denominations = dto.CountsByKey(breakdown)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Decompose godoc
//
//	@Summary		Split an amount into denominations
//	@Description	Greedy split over the configured ladder, optionally capped by the coins on hand.
//	@Tags			Denominations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DecomposeRequestDTO		true	"Amount and optional inventory"
//	@Success		200		{object}	dto.DecomposeResponseDTO	"Counts per denomination"
//	@Failure		400		{object}	utils.Response				"Invalid amount or inventory"
//	@Failure		422		{object}	utils.Response				"Amount cannot be represented"
//	@Router			/api/denominations/decompose [post]
func (h *AccountHandler) Decompose(w http.ResponseWriter, r *http.Request) {
	var req dto.DecomposeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := req.ToAmount()
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	inventory, err := req.ToInventory()
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	breakdown, err := h.ledgerService.Decompose(amount, inventory)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DecomposeResponseDTO{
		Amount: breakdown.Total.String(),
		Counts: dto.CountsByKey(breakdown),
	})
}

func intParam(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
