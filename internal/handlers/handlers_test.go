package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/funcoin/internal/handlers/accounts"
	"github.com/GlebRadaev/funcoin/internal/handlers/vouchers"
	"github.com/GlebRadaev/funcoin/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		VoucherService: vouchers.NewMockService(ctrl),
		LedgerService:  accounts.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.VoucherHandler)
	assert.NotNil(t, h.AccountHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	voucherHandler := NewMockVoucherHandler(ctrl)
	accountHandler := NewMockAccountHandler(ctrl)

	voucherHandler.EXPECT().Issue(gomock.Any(), gomock.Any()).AnyTimes()
	voucherHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	voucherHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	voucherHandler.EXPECT().Activate(gomock.Any(), gomock.Any()).AnyTimes()
	voucherHandler.EXPECT().Deactivate(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().Open(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().History(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().Redeem(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().PlaceBet(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().SettleWin(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().CashOut(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().Decompose(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		VoucherHandler: voucherHandler,
		AccountHandler: accountHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/vouchers", http.StatusOK},
		{"GET", "/api/vouchers", http.StatusOK},
		{"GET", "/api/vouchers/123455", http.StatusOK},
		{"POST", "/api/vouchers/123455/activate", http.StatusOK},
		{"POST", "/api/vouchers/123455/deactivate", http.StatusOK},
		{"POST", "/api/accounts", http.StatusOK},
		{"GET", "/api/accounts/player-1/balance", http.StatusOK},
		{"GET", "/api/accounts/player-1/history", http.StatusOK},
		{"POST", "/api/accounts/player-1/redeem", http.StatusOK},
		{"POST", "/api/accounts/player-1/bets", http.StatusOK},
		{"POST", "/api/accounts/player-1/wins", http.StatusOK},
		{"POST", "/api/accounts/player-1/cashout", http.StatusOK},
		{"POST", "/api/denominations/decompose", http.StatusOK},
		{"GET", "/api/accounts/player-1/cashout", http.StatusMethodNotAllowed},
		{"DELETE", "/api/vouchers/123455", http.StatusMethodNotAllowed},
		{"GET", "/api/unknown", http.StatusNotFound},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/swagger/doc.json", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
