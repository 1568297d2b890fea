package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neha-5456/kaagjee/internal/payment"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	client := New("rzp_test_key", "secret123", "https://api.razorpay.com/v1")

	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"

	assert.True(t, client.VerifySignature(orderID, paymentID, sign("secret123", orderID, paymentID)))
	assert.False(t, client.VerifySignature(orderID, paymentID, sign("wrongsecret", orderID, paymentID)))
	assert.False(t, client.VerifySignature(orderID, paymentID, "nonsense"))
	assert.False(t, client.VerifySignature(orderID, "pay_other", sign("secret123", orderID, paymentID)))
}

func TestDevMode(t *testing.T) {
	client := New("", "", "https://api.razorpay.com/v1")

	order, err := client.CreateOrder(5000, "INR", "CS20250130ABCDEF", nil)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "order_dev_"))
	assert.Equal(t, int64(5000), order.Amount)
	assert.Equal(t, "INR", order.Currency)

	// Without credentials every signature is accepted.
	assert.True(t, client.VerifySignature("order_x", "pay_y", "anything"))
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret123", pass)

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, float64(250000), req["amount"])
		assert.Equal(t, "INR", req["currency"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_remote_1",
			"amount":   250000,
			"currency": "INR",
			"receipt":  req["receipt"],
			"status":   "created",
		})
	}))
	defer server.Close()

	client := New("rzp_test_key", "secret123", server.URL)
	order, err := client.CreateOrder(250000, "INR", "CS20250130ABCDEF", map[string]string{"order_number": "CS20250130ABCDEF"})
	assert.NoError(t, err)
	assert.Equal(t, "order_remote_1", order.ID)
	assert.Equal(t, int64(250000), order.Amount)
	assert.Equal(t, "CS20250130ABCDEF", order.Receipt)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":        "BAD_REQUEST_ERROR",
				"description": "amount must be at least 100",
			},
		})
	}))
	defer server.Close()

	client := New("rzp_test_key", "secret123", server.URL)
	_, err := client.CreateOrder(1, "INR", "r1", nil)
	assert.ErrorIs(t, err, payment.ErrGateway)
	assert.Contains(t, err.Error(), "BAD_REQUEST_ERROR")
}
