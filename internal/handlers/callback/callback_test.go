package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	cbqueue "github.com/GlebRadaev/wordpay/internal/callback"
	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/dto"
)

type fakeQueue struct {
	tasks []cbqueue.Task
	err   error
}

func (q *fakeQueue) TryEnqueue(task cbqueue.Task) error {
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, task)
	return nil
}

func NewMock(t *testing.T, queue cbqueue.QueueI, secret string) (*CallbackHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service, queue, secret), service
}

func post(h *CallbackHandler, body string, headers map[string]string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/payments/callback", bytes.NewBufferString(body))
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.Callback(w, r)
	return w
}

func TestCallbackHandler_Inline(t *testing.T) {
	handler, service := NewMock(t, nil, "")

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		check         func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "Completes pending payment",
			body: `{"correlationId":"abc","reference":"R1"}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "abc", "R1").Return(&domain.Settlement{
					CorrelationID: "abc",
					Reference:     "R1",
					Status:        domain.StatusCompleted,
					WordsAdded:    100,
					NewBalance:    100,
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body dto.SettlementResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, dto.SettlementResponseDTO{CorrelationID: "abc", Reference: "R1", WordsAdded: 100, NewBalance: 100}, body)
			},
		},
		{
			name: "Provider field names",
			body: `{"CheckoutRequestID":"abc","refference":"R1"}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "abc", "R1").Return(&domain.Settlement{
					CorrelationID: "abc",
					Reference:     "R1",
					Status:        domain.StatusCompleted,
					WordsAdded:    100,
					NewBalance:    200,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Duplicate delivery",
			body: `{"correlationId":"abc","reference":"R1"}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "abc", "R1").Return(&domain.Settlement{
					CorrelationID: "abc",
					Reference:     "R1",
					Status:        domain.StatusCompleted,
					Duplicate:     true,
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body dto.PaymentStateResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, dto.PaymentStateResponseDTO{CorrelationID: "abc", Status: "completed", Duplicate: true}, body)
			},
		},
		{
			name: "Failure callback",
			body: `{"CheckoutRequestID":"abc","ResultCode":1032,"ResultDesc":"Request cancelled by user"}`,
			prepareMock: func() {
				service.EXPECT().Fail(gomock.Any(), "abc", "Request cancelled by user").Return(&domain.Settlement{
					CorrelationID: "abc",
					Status:        domain.StatusFailed,
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body dto.PaymentStateResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "failed", body.Status)
				assert.False(t, body.Duplicate)
			},
		},
		{
			name: "Result code sent as string",
			body: `{"CheckoutRequestID":"abc","reference":"R1","ResultCode":"0"}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "abc", "R1").Return(&domain.Settlement{
					CorrelationID: "abc",
					Reference:     "R1",
					Status:        domain.StatusCompleted,
					WordsAdded:    100,
					NewBalance:    100,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unexpected status type",
			body: `{"CheckoutRequestID":"abc","reference":"R1","Status":true}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "abc", "R1").Return(&domain.Settlement{
					CorrelationID: "abc",
					Reference:     "R1",
					Status:        domain.StatusCompleted,
					WordsAdded:    100,
					NewBalance:    100,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unexpected result description type",
			body: `{"CheckoutRequestID":"abc","reference":"R1","ResultDesc":{"code":0}}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "abc", "R1").Return(&domain.Settlement{
					CorrelationID: "abc",
					Reference:     "R1",
					Status:        domain.StatusCompleted,
					WordsAdded:    100,
					NewBalance:    100,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Failure code sent as string",
			body: `{"CheckoutRequestID":"abc","ResultCode":"1032","ResultDesc":"Request cancelled by user"}`,
			prepareMock: func() {
				service.EXPECT().Fail(gomock.Any(), "abc", "Request cancelled by user").Return(&domain.Settlement{
					CorrelationID: "abc",
					Status:        domain.StatusFailed,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown transaction",
			body: `{"correlationId":"unknown-id","reference":"R9"}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "unknown-id", "R9").Return(nil, domain.ErrTransactionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Transaction not found",
		},
		{
			name:          "Malformed body",
			body:          "not json",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid callback data",
		},
		{
			name:          "Missing correlation id",
			body:          `{"reference":"R1"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "correlationId is required",
		},
		{
			name: "Internal server error",
			body: `{"correlationId":"abc","reference":"R1"}`,
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), "abc", "R1").Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := post(handler, tt.body, nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}

func TestCallbackHandler_Secret(t *testing.T) {
	handler, service := NewMock(t, nil, "s3cret")

	w := post(handler, `{"correlationId":"abc"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(handler, `{"correlationId":"abc"}`, map[string]string{TokenHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	service.EXPECT().Reconcile(gomock.Any(), "abc", "").Return(&domain.Settlement{
		CorrelationID: "abc",
		Status:        domain.StatusCompleted,
		WordsAdded:    100,
		NewBalance:    100,
	}, nil)
	w = post(handler, `{"correlationId":"abc"}`, map[string]string{TokenHeader: "s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCallbackHandler_Queued(t *testing.T) {
	queue := &fakeQueue{}
	handler, service := NewMock(t, queue, "")

	w := post(handler, `{"correlationId":"abc","reference":"R1"}`, nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, queue.tasks, 1)

	service.EXPECT().Reconcile(gomock.Any(), "abc", "R1").Return(&domain.Settlement{
		CorrelationID: "abc",
		Status:        domain.StatusCompleted,
	}, nil)
	assert.NoError(t, queue.tasks[0](context.Background()))
}

func TestCallbackHandler_QueueFull(t *testing.T) {
	handler, _ := NewMock(t, &fakeQueue{err: cbqueue.ErrQueueFull}, "")

	w := post(handler, `{"correlationId":"abc","reference":"R1"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
