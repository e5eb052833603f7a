package handler_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWebhookHandler_HandlePayment(t *testing.T) {
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1"}}}}`)

	testCases := []struct {
		name         string
		signature    string
		mockBehavior func(svc *mocks.MockReconciler)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "applied",
			signature: "good",
			mockBehavior: func(svc *mocks.MockReconciler) {
				svc.EXPECT().HandleEvent(mock.Anything, body, "good").Return(service.OutcomeApplied, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"outcome":"applied"`,
		},
		{
			name:      "uncorrelated is still acknowledged",
			signature: "good",
			mockBehavior: func(svc *mocks.MockReconciler) {
				svc.EXPECT().HandleEvent(mock.Anything, body, "good").Return(service.OutcomeUncorrelated, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:      "invalid signature",
			signature: "bad",
			mockBehavior: func(svc *mocks.MockReconciler) {
				svc.EXPECT().HandleEvent(mock.Anything, body, "bad").Return("", payment.ErrInvalidSignature).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid signature"}`,
		},
		{
			name:      "malformed event",
			signature: "good",
			mockBehavior: func(svc *mocks.MockReconciler) {
				svc.EXPECT().HandleEvent(mock.Anything, body, "good").Return("", payment.ErrMalformedEvent).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"malformed event"`,
		},
		{
			name:      "store failure asks for redelivery",
			signature: "good",
			mockBehavior: func(svc *mocks.MockReconciler) {
				svc.EXPECT().HandleEvent(mock.Anything, body, "good").Return("", errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReconciler(t)
			tc.mockBehavior(svc)

			h := handler.NewWebhookHandler(discardLogger(), svc, "X-Razorpay-Signature")
			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
			req.Header.Set("X-Razorpay-Signature", tc.signature)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
