package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StripeService wraps the single payment-provider call the checkout flow
// needs: creating a card-payable payment intent for a given price.
type StripeService struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewStripeService(secretKey, baseURL string) *StripeService {
	return &StripeService{
		secretKey: secretKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateIntent validates the price, converts it to minor units (cents,
// rounded up) and asks Stripe for a payment intent. It returns the client
// secret the frontend needs to complete the charge. Provider errors are
// passed through without retries.
func (s *StripeService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return "", ErrInvalidPrice
	}
	amount := int64(math.Ceil(price * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.New("stripe error: " + string(body))
	}

	var result struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.ClientSecret, nil
}
