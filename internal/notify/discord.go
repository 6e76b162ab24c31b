package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// colorOrange marks escalations; review requests must stand out from the
// automated accept/reject/counter flow.
const colorOrange = 0xE67E22

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NotifyReview sends a manual-review request as a Discord embed.
func (d *DiscordNotifier) NotifyReview(ctx context.Context, review ReviewPayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildReviewEmbed(review)},
	}
	return d.post(ctx, payload)
}

func buildReviewEmbed(review ReviewPayload) discordEmbed {
	return discordEmbed{
		Title:       fmt.Sprintf("Manual review: %s", review.ListingTitle),
		Color:       colorOrange,
		Description: review.Reasoning,
		Fields: []discordEmbedField{
			{Name: "Offer", Value: fmt.Sprintf("%.2f %s", review.OfferAmount, review.Currency), Inline: true},
			{Name: "List Price", Value: fmt.Sprintf("%.2f %s", review.ListPrice, review.Currency), Inline: true},
			{Name: "Offer ID", Value: review.OfferID, Inline: true},
			{Name: "Buyer Score", Value: fmt.Sprintf("%.1f", review.BuyerScore), Inline: true},
			{Name: "Urgency", Value: fmt.Sprintf("%.2f", review.UrgencyScore), Inline: true},
		},
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
