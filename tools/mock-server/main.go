// Package main implements a mock Vinted marketplace API server for local
// development. It serves pending offers from a JSON fixture and records
// offer responses in memory, so the negotiator can run a full poll cycle
// without real marketplace credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

type offer struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	VintedItemID string    `json:"item_id"`
	BuyerID      string    `json:"buyer_id"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
}

type offersFixture struct {
	Offers []offer `json:"offers"`
}

type offerResponse struct {
	Action        string   `json:"action"`
	CounterAmount *float64 `json:"counter_amount,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// offerBook tracks which offers have been answered.
type offerBook struct {
	mu        sync.Mutex
	offers    []offer
	responded map[string]offerResponse
}

func newOfferBook(offers []offer) *offerBook {
	return &offerBook{
		offers:    offers,
		responded: make(map[string]offerResponse),
	}
}

func (b *offerBook) pendingFor(userID string) []offer {
	b.mu.Lock()
	defer b.mu.Unlock()

	pending := []offer{}
	for _, o := range b.offers {
		if o.UserID != userID {
			continue
		}
		if _, ok := b.responded[o.ID]; ok {
			continue
		}
		pending = append(pending, o)
	}
	return pending
}

func (b *offerBook) respond(offerID string, resp offerResponse) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, o := range b.offers {
		if o.ID == offerID {
			b.responded[offerID] = resp
			return true
		}
	}
	return false
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/pending_offers.json", "path to pending offers fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "offers", len(fixture.Offers))

	book := newOfferBook(fixture.Offers)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v2/users/{user_id}/offers", pendingOffersHandler(logger, book))
	mux.HandleFunc("POST /v2/offers/{offer_id}/respond", respondHandler(logger, book))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock marketplace server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*offersFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f offersFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func requireBearer(logger *slog.Logger, w http.ResponseWriter, r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") == "" {
		logger.Warn("request missing bearer token", "path", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
		return false
	}
	return true
}

func pendingOffersHandler(logger *slog.Logger, book *offerBook) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(logger, w, r) {
			return
		}

		// Only the pending view is implemented; anything else is empty.
		status := r.URL.Query().Get("status")
		userID := r.PathValue("user_id")

		var pending []offer
		if status == "" || status == "pending" {
			pending = book.pendingFor(userID)
		} else {
			pending = []offer{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{"offers": pending})
		logger.Info("pending offers", "user", userID, "returned", len(pending))
	}
}

func respondHandler(logger *slog.Logger, book *offerBook) http.HandlerFunc {
	validActions := map[string]bool{"accept": true, "reject": true, "counter": true}

	return func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(logger, w, r) {
			return
		}

		offerID := r.PathValue("offer_id")

		var resp offerResponse
		if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		if !validActions[resp.Action] {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_action"})
			return
		}
		if resp.Action == "counter" && resp.CounterAmount == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "counter_amount_required"})
			return
		}

		if !book.respond(offerID, resp) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "offer_not_found"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Info("offer answered", "offer", offerID, "action", resp.Action)
	}
}
