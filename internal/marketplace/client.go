// Package marketplace provides a Vinted-style marketplace API client
// abstracted behind interfaces for testability. The engine only sees the
// Client interface; auth, rate limiting, and wire details live here.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	domain "github.com/sellermate/negotiator/pkg/types"

	"github.com/sellermate/negotiator/internal/metrics"
)

// Offer is a buyer's pending offer on one of the seller's listings, as
// reported by the marketplace.
type Offer struct {
	ID           string    `json:"id"`
	VintedItemID string    `json:"item_id"`
	BuyerID      string    `json:"buyer_id"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
}

// OfferResponse is the decision pushed back to the marketplace for an offer.
// Ignore decisions are never pushed; they stay with the seller.
type OfferResponse struct {
	Action        domain.RuleAction `json:"action"`
	CounterAmount *float64          `json:"counter_amount,omitempty"`
	Message       string            `json:"message,omitempty"`
}

// Client defines the interface for interacting with the marketplace API.
type Client interface {
	PendingOffers(ctx context.Context, userID string) ([]Offer, error)
	RespondToOffer(ctx context.Context, offerID string, resp OfferResponse) error
}

// TokenProvider defines the interface for obtaining API tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

const defaultBaseURL = "https://api.vinted.example.com/v2"

// HTTPClient implements Client against the marketplace REST API.
type HTTPClient struct {
	tokens      TokenProvider
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithBaseURL overrides the default API endpoint.
func WithBaseURL(u string) Option {
	return func(c *HTTPClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every API call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *HTTPClient) {
		c.rateLimiter = r
	}
}

// NewHTTPClient creates a new marketplace API client.
func NewHTTPClient(tokens TokenProvider, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		tokens:  tokens,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type pendingOffersResponse struct {
	Offers []Offer `json:"offers"`
}

// PendingOffers returns the user's unanswered offers.
func (c *HTTPClient) PendingOffers(ctx context.Context, userID string) ([]Offer, error) {
	var out pendingOffersResponse
	u := fmt.Sprintf("%s/users/%s/offers?status=pending", c.baseURL, userID)
	if err := c.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, fmt.Errorf("fetching pending offers: %w", err)
	}
	return out.Offers, nil
}

// RespondToOffer pushes an accept, reject, or counter decision to the marketplace.
func (c *HTTPClient) RespondToOffer(
	ctx context.Context,
	offerID string,
	resp OfferResponse,
) error {
	u := fmt.Sprintf("%s/offers/%s/respond", c.baseURL, offerID)
	if err := c.do(ctx, http.MethodPost, u, resp, nil); err != nil {
		return fmt.Errorf("responding to offer %s: %w", offerID, err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, u string, body, out any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.MarketplaceDailyLimitHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.MarketplaceAPICallsTotal.Inc()
		metrics.MarketplaceDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("getting auth token: %w", err)
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("executing HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("marketplace API returned %d: %s", resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
