package razorpay

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neha-5456/kaagjee/internal/payment"
	"github.com/neha-5456/kaagjee/internal/utils"
)

// Client talks to the Razorpay Orders REST API. When KeyID is empty it runs
// in dev mode: CreateOrder mints a local reference without a remote call and
// VerifySignature accepts anything, mirroring a sandbox-less local setup.
type Client struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	HTTP      *http.Client
}

func New(keyID, keySecret, baseURL string) *Client {
	return &Client{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   strings.TrimRight(baseURL, "/"),
		HTTP:      utils.NewHTTPClient(15 * time.Second),
	}
}

func (c *Client) devMode() bool {
	return c.KeyID == "" || c.KeySecret == ""
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

func (c *Client) CreateOrder(amountMinorUnits int64, currency, receipt string, notes map[string]string) (*payment.GatewayOrder, error) {
	if c.devMode() {
		return &payment.GatewayOrder{
			ID:       "order_dev_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:14],
			Amount:   amountMinorUnits,
			Currency: currency,
			Receipt:  receipt,
		}, nil
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrGateway, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrGateway, err)
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrGateway, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var parsed orderResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: unexpected response (%d): %s", payment.ErrGateway, resp.StatusCode, string(respBody))
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("%w: %s: %s", payment.ErrGateway, parsed.Error.Code, parsed.Error.Description)
		}
		return nil, fmt.Errorf("%w: status %d", payment.ErrGateway, resp.StatusCode)
	}
	if parsed.ID == "" {
		return nil, fmt.Errorf("%w: empty order id in response", payment.ErrGateway)
	}

	return &payment.GatewayOrder{
		ID:       parsed.ID,
		Amount:   parsed.Amount,
		Currency: parsed.Currency,
		Receipt:  parsed.Receipt,
	}, nil
}

// VerifySignature checks the HMAC-SHA256 signature Razorpay computes over
// "<order_id>|<payment_id>" with the key secret.
func (c *Client) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if c.devMode() {
		return true
	}

	mac := hmac.New(sha256.New, []byte(c.KeySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
