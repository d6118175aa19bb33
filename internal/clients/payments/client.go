package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/config"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/transport"
)

const defaultRetryWaitMax = time.Second * 5

// Client talks to the payment service REST API on behalf of the scheduler.
type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(cfg config.PaymentService) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewRoundTripper(http.DefaultTransport, cfg.APIKey)

	retryClient.Logger = nil

	// Only transport failures are retried, an HTTP error status is a final answer.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.URL, "/"),
	}
}

type regularPayment struct {
	ID              uuid.UUID          `json:"id"`
	PIB             string             `json:"PIB"`
	IPN             string             `json:"IPN"`
	IBAN            string             `json:"IBAN"`
	MFO             string             `json:"MFO"`
	EDRPOU          string             `json:"EDRPOU"`
	BeneficiaryName string             `json:"beneficiaryName"`
	DebitPeriod     entity.DebitPeriod `json:"debitPeriod"`
	PaymentAmount   decimal.Decimal    `json:"paymentAmount"`
}

type entry struct {
	ID               uuid.UUID       `json:"id"`
	RegularPaymentID uuid.UUID       `json:"regularPaymentId"`
	DateOfPayment    time.Time       `json:"dateOfPayment"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
}

func (c *Client) RegularPayments(ctx context.Context) ([]entity.RegularPayment, error) {
	var resp []regularPayment

	err := c.do(ctx, http.MethodGet, "/regular-payments", nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get regular payments: %w", err)
	}

	res := make([]entity.RegularPayment, 0, len(resp))
	for _, p := range resp {
		res = append(res, entity.RegularPayment{
			ID:              p.ID,
			PIB:             p.PIB,
			IPN:             p.IPN,
			IBAN:            p.IBAN,
			MFO:             p.MFO,
			EDRPOU:          p.EDRPOU,
			BeneficiaryName: p.BeneficiaryName,
			DebitPeriod:     p.DebitPeriod,
			PaymentAmount:   p.PaymentAmount,
		})
	}

	return res, nil
}

func (c *Client) IsWriteOffNeeded(ctx context.Context, regularPaymentID uuid.UUID) (bool, error) {
	var due bool

	query := url.Values{"id": {regularPaymentID.String()}}

	err := c.do(ctx, http.MethodGet, "/entrie-payments/check", query, nil, &due)
	if err != nil {
		return false, fmt.Errorf("check write-off: %w", err)
	}

	return due, nil
}

func (c *Client) CreateEntry(ctx context.Context, e entity.EntriesPayment) (entity.EntriesPayment, error) {
	req := entry{
		RegularPaymentID: e.RegularPaymentID,
		DateOfPayment:    e.DateOfPayment,
		Amount:           e.Amount,
		Status:           e.Status.String(),
	}

	var resp entry

	err := c.do(ctx, http.MethodPost, "/entrie-payments", nil, req, &resp)
	if err != nil {
		return entity.EntriesPayment{}, fmt.Errorf("create entry: %w", err)
	}

	return entity.EntriesPayment{
		ID:               resp.ID,
		RegularPaymentID: resp.RegularPaymentID,
		DateOfPayment:    resp.DateOfPayment,
		Amount:           resp.Amount,
		Status:           entity.EntryStatus(resp.Status),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dst any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("%w: %w", entity.ErrRemoteUnavailable, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &entity.RemoteError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(respBody),
		}
	}

	err = json.Unmarshal(respBody, dst)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
