package vouchers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/funcoin/internal/domain"
	"github.com/GlebRadaev/funcoin/internal/dto"
	"github.com/GlebRadaev/funcoin/internal/service/voucherservice"
	"github.com/GlebRadaev/funcoin/pkg/money"
)

func NewMock(t *testing.T) (*VoucherHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withCode(r *http.Request, code string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", code)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestIssueHandler(t *testing.T) {
	handler, service := NewMock(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	voucher := &domain.Voucher{
		Code: "123455", Amount: 10000, Bonus: 5000, MaxRedemptions: 1, PerUserLimit: 1, Active: true, CreatedAt: created,
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  *dto.VoucherResponseDTO
	}{
		{
			name: "Successful issue",
			body: `{"amount":"100.00"}`,
			prepareMock: func() {
				service.EXPECT().
					Issue(gomock.Any(), voucherservice.IssueParams{Amount: 10000}).
					Return(&voucherservice.IssuedVoucher{Voucher: voucher, RedeemURL: "https://cashier.example/redeem?code=123455"}, nil)
				service.EXPECT().State(voucher).Return(domain.VoucherActive)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &dto.VoucherResponseDTO{
				Code:           "123455",
				Amount:         "100.00",
				Bonus:          "50.00",
				TotalValue:     "150.00",
				MaxRedemptions: 1,
				PerUserLimit:   1,
				Remaining:      1,
				Active:         true,
				State:          "active",
				CreatedAt:      created,
				RedeemURL:      "https://cashier.example/redeem?code=123455",
			},
		},
		{
			name: "Custom bonus percent",
			body: `{"amount":"100","bonusPercent":10,"maxRedemptions":3}`,
			prepareMock: func() {
				service.EXPECT().Issue(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p voucherservice.IssueParams) (*voucherservice.IssuedVoucher, error) {
						require.NotNil(t, p.Bonus)
						assert.Equal(t, money.Amount(1000), p.Bonus(p.Amount))
						assert.Equal(t, 3, p.MaxRedemptions)
						return &voucherservice.IssuedVoucher{Voucher: voucher}, nil
					})
				service.EXPECT().State(voucher).Return(domain.VoucherActive)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Invalid amount",
			body:          `{"amount":"1.234"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid fun-coin amount",
		},
		{
			name:          "Bonus percent out of range",
			body:          `{"amount":"1","bonusPercent":-5}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid voucher parameters",
		},
		{
			name: "Code space exhausted",
			body: `{"amount":"1"}`,
			prepareMock: func() {
				service.EXPECT().Issue(gomock.Any(), voucherservice.IssueParams{Amount: 100}).Return(nil, domain.ErrCodeSpaceExhausted)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name: "Internal server error",
			body: `{"amount":"1"}`,
			prepareMock: func() {
				service.EXPECT().Issue(gomock.Any(), voucherservice.IssueParams{Amount: 100}).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/vouchers", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Issue(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedBody != nil {
				var body dto.VoucherResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	vouchers := []domain.Voucher{
		{Code: "1234566", Amount: 200, MaxRedemptions: 1, PerUserLimit: 1, RedeemedCount: 1, Active: true},
		{Code: "123455", Amount: 100, MaxRedemptions: 1, PerUserLimit: 1, Active: true},
	}

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedCodes []string
	}{
		{
			name:  "Default limit",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListRecent(gomock.Any(), 0).Return(vouchers, nil)
				service.EXPECT().State(gomock.Any()).Return(domain.VoucherExhausted)
				service.EXPECT().State(gomock.Any()).Return(domain.VoucherActive)
			},
			expectedCode:  http.StatusOK,
			expectedCodes: []string{"1234566", "123455"},
		},
		{
			name:  "Explicit limit, empty list",
			query: "?limit=5",
			prepareMock: func() {
				service.EXPECT().ListRecent(gomock.Any(), 5).Return(nil, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCodes: []string{},
		},
		{
			name:         "Malformed limit",
			query:        "?limit=five",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal server error",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListRecent(gomock.Any(), 0).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/vouchers"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCodes != nil {
				var body []dto.VoucherResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				codes := make([]string, len(body))
				for i, v := range body {
					codes[i] = v.Code
				}
				assert.Equal(t, tt.expectedCodes, codes)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)
	voucher := &domain.Voucher{Code: "123455", Amount: 100, MaxRedemptions: 1, PerUserLimit: 1}

	service.EXPECT().Lookup(gomock.Any(), "123455").Return(voucher, nil)
	service.EXPECT().State(voucher).Return(domain.VoucherInactive)
	w := httptest.NewRecorder()
	handler.Get(w, withCode(httptest.NewRequest(http.MethodGet, "/api/vouchers/123455", nil), "123455"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"inactive"`)

	service.EXPECT().Lookup(gomock.Any(), "999999").Return(nil, domain.ErrVoucherNotFound)
	w = httptest.NewRecorder()
	handler.Get(w, withCode(httptest.NewRequest(http.MethodGet, "/api/vouchers/999999", nil), "999999"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetActiveHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SetActive(gomock.Any(), "123455", false).Return(nil)
	w := httptest.NewRecorder()
	handler.Deactivate(w, withCode(httptest.NewRequest(http.MethodPost, "/", nil), "123455"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	service.EXPECT().SetActive(gomock.Any(), "123455", true).Return(nil)
	w = httptest.NewRecorder()
	handler.Activate(w, withCode(httptest.NewRequest(http.MethodPost, "/", nil), "123455"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	service.EXPECT().SetActive(gomock.Any(), "999999", true).Return(domain.ErrVoucherNotFound)
	w = httptest.NewRecorder()
	handler.Activate(w, withCode(httptest.NewRequest(http.MethodPost, "/", nil), "999999"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
