package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/funcoin/docs"
	accounthandlers "github.com/GlebRadaev/funcoin/internal/handlers/accounts"
	voucherhandlers "github.com/GlebRadaev/funcoin/internal/handlers/vouchers"
	"github.com/GlebRadaev/funcoin/internal/service"
)

type VoucherHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	PlaceBet(w http.ResponseWriter, r *http.Request)
	SettleWin(w http.ResponseWriter, r *http.Request)
	CashOut(w http.ResponseWriter, r *http.Request)
	Decompose(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	VoucherHandler VoucherHandler
	AccountHandler AccountHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		VoucherHandler: voucherhandlers.New(s.VoucherService),
		AccountHandler: accounthandlers.New(s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/vouchers", func(r chi.Router) {
			r.Post("/", h.VoucherHandler.Issue)
			r.Get("/", h.VoucherHandler.List)
			r.Route("/{code}", func(r chi.Router) {
				r.Get("/", h.VoucherHandler.Get)
				r.Post("/activate", h.VoucherHandler.Activate)
				r.Post("/deactivate", h.VoucherHandler.Deactivate)
			})
		})
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.AccountHandler.Open)
			r.Route("/{ref}", func(r chi.Router) {
				r.Get("/balance", h.AccountHandler.GetBalance)
				r.Get("/history", h.AccountHandler.History)
				r.Post("/redeem", h.AccountHandler.Redeem)
				r.Post("/bets", h.AccountHandler.PlaceBet)
				r.Post("/wins", h.AccountHandler.SettleWin)
				r.Post("/cashout", h.AccountHandler.CashOut)
			})
		})
		r.Post("/denominations/decompose", h.AccountHandler.Decompose)
	})

	return r
}
