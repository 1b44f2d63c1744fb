// Package gateway submits push-payment (STK) requests to the mobile-money
// provider and classifies its answer.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/metrics"
	"github.com/GlebRadaev/wordpay/pkg/clients"
)

const (
	routeSTKPush = "/request/stk"

	// settledMessage is what the provider answers when the payment was
	// confirmed before the HTTP response was written.
	settledMessage = "callback received successfully"
)

type Outcome int

const (
	OutcomeSettled Outcome = iota + 1
	OutcomePending
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSettled:
		return "settled"
	case OutcomePending:
		return "pending"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is the classified provider answer. CorrelationID is set for Settled
// and Pending, Reference only for Settled, Message only for Rejected.
type Result struct {
	Outcome       Outcome
	CorrelationID string
	Reference     string
	Message       string
}

type stkRequest struct {
	Phone       string `json:"phone"`
	Amount      string `json:"amount"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type stkResponse struct {
	Message string   `json:"message"`
	Data    *stkData `json:"data"`
}

type stkData struct {
	CheckoutRequestID string `json:"CheckoutRequestID"`
	// The provider spells it with two f's.
	Reference string `json:"refference"`
}

type Client struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func New(baseURL, apiKey string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    strings.TrimSuffix(baseURL, "/") + routeSTKPush,
		apiKey: apiKey,
		client: client,
	}
}

// Submit sends one push-payment request. Network failures, timeouts, 408,
// 429 and 5xx answers are reported as domain.ErrGatewayUnreachable; every
// other answer is classified into a Result.
func (c *Client) Submit(ctx context.Context, phone string, amount int64, callbackURL string) (Result, error) {
	start := time.Now()
	res, err := c.submit(ctx, phone, amount, callbackURL)

	outcome := res.Outcome.String()
	if err != nil {
		outcome = "unreachable"
	}
	metrics.GatewayLatency.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	return res, err
}

func (c *Client) submit(ctx context.Context, phone string, amount int64, callbackURL string) (Result, error) {
	body, err := json.Marshal(stkRequest{
		Phone:       phone,
		Amount:      strconv.FormatInt(amount, 10),
		CallbackURL: callbackURL,
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode stk request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey)
	headers.Set("Content-Type", "application/json")

	zap.L().Debug("sending stk push", zap.String("phone", phone), zap.Int64("amount", amount))
	statusCode, respBody, _, err := c.client.Post(ctx, c.url, headers, body)
	if err != nil {
		if isTimeout(err) {
			zap.L().Warn("stk push timed out", zap.Error(err))
			return Result{}, fmt.Errorf("%w: %s", domain.ErrGatewayTimeout, err.Error())
		}
		zap.L().Error("stk push failed", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %s", domain.ErrGatewayUnreachable, err.Error())
	}

	switch {
	case statusCode == http.StatusOK:
		return classify(respBody), nil
	case statusCode == http.StatusRequestTimeout || statusCode == http.StatusGatewayTimeout:
		return Result{}, fmt.Errorf("%w: provider status %d", domain.ErrGatewayTimeout, statusCode)
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		// The provider refused our credentials, not the customer's payment.
		zap.L().Error("provider rejected api key", zap.Int("status", statusCode))
		return Result{}, fmt.Errorf("%w: provider status %d", domain.ErrGatewayUnreachable, statusCode)
	case statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError:
		zap.L().Error("unexpected provider status", zap.Int("status", statusCode))
		return Result{}, fmt.Errorf("%w: provider status %d", domain.ErrGatewayUnreachable, statusCode)
	default:
		msg := rejectionMessage(respBody)
		zap.L().Info("provider declined payment", zap.Int("status", statusCode), zap.String("message", msg))
		return Result{Outcome: OutcomeRejected, Message: msg}, nil
	}
}

func classify(body []byte) Result {
	var resp stkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{Outcome: OutcomeRejected, Message: "malformed provider response"}
	}

	// A missing correlation id leaves nothing to track.
	if resp.Data == nil || resp.Data.CheckoutRequestID == "" {
		msg := resp.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return Result{Outcome: OutcomeRejected, Message: msg}
	}

	if resp.Message == settledMessage {
		return Result{
			Outcome:       OutcomeSettled,
			CorrelationID: resp.Data.CheckoutRequestID,
			Reference:     resp.Data.Reference,
		}
	}
	return Result{Outcome: OutcomePending, CorrelationID: resp.Data.CheckoutRequestID}
}

func rejectionMessage(body []byte) string {
	var resp stkResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return "payment request declined"
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
