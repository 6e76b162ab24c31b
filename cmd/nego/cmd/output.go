package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/sellermate/negotiator/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printRulesTable(rules []domain.NegotiationRule) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tCONDITION\tTHRESHOLD\tACTION\tCOUNTER%%\tPRIORITY\tENABLED\n")
	for i := range rules {
		r := &rules[i]
		counter := "-"
		if r.CounterPercentage != nil {
			counter = fmt.Sprintf("%.0f%%", *r.CounterPercentage)
		}
		tw.writef("%s\t%s\t%s\t%.1f\t%s\t%s\t%d\t%v\n",
			r.ID,
			truncate(r.Name, 30),
			r.Condition,
			r.Threshold,
			r.Action,
			counter,
			r.Priority,
			r.Enabled,
		)
	}
	return tw.finish()
}

func printRuleDetail(r *domain.NegotiationRule) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Name:\t%s\n", r.Name)
	if r.Description != "" {
		tw.writef("Description:\t%s\n", r.Description)
	}
	tw.writef("Condition:\t%s\n", r.Condition)
	tw.writef("Threshold:\t%.2f\n", r.Threshold)
	tw.writef("Action:\t%s\n", r.Action)
	if r.CounterPercentage != nil {
		tw.writef("Counter:\t%.1f%% of list price\n", *r.CounterPercentage)
	}
	tw.writef("Priority:\t%d\n", r.Priority)
	tw.writef("Enabled:\t%v\n", r.Enabled)
	return tw.finish()
}

func printAnalysisDetail(a *domain.OfferAnalysis) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Offer:\t%s\n", a.OfferID)
	tw.writef("Listing:\t%s\n", a.ListingID)
	tw.writef("Offer Amount:\t%.2f\n", a.OfferAmount)
	tw.writef("List Price:\t%.2f\n", a.ListPrice)
	tw.writef("Discount:\t%.1f%%\n", a.DiscountPercentage)
	tw.writef("Min Acceptable:\t%.2f\n", a.MinAcceptable)
	tw.writef("Acceptable:\t%v\n", a.IsAcceptable)
	tw.writef("Action:\t%s\n", a.RecommendedAction)
	if a.CounterOfferAmount != nil {
		tw.writef("Counter At:\t%.2f\n", *a.CounterOfferAmount)
	}
	tw.writef("Buyer Score:\t%.2f\n", a.BuyerScore)
	tw.writef("Urgency Score:\t%.2f\n", a.UrgencyScore)
	if a.MatchedRuleID != "" {
		tw.writef("Matched Rule:\t%s\n", a.MatchedRuleID)
	}
	tw.writef("Reasoning:\t%s\n", a.Reasoning)
	return tw.finish()
}

func printExecutionDetail(r *domain.ExecutionResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Offer:\t%s\n", r.OfferID)
	tw.writef("Action:\t%s\n", r.Action)
	if r.CounterAmount != nil {
		tw.writef("Counter At:\t%.2f\n", *r.CounterAmount)
	}
	tw.writef("Executed:\t%s\n", r.Timestamp.Format("2006-01-02 15:04:05"))
	tw.writef("Reasoning:\t%s\n", r.Reasoning)
	return tw.finish()
}

func printHistoryTable(records []domain.NegotiationHistory) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("WHEN\tOFFER\tAMOUNT\tACTION\tCOUNTER\tRULE\tREASONING\n")
	for i := range records {
		h := &records[i]
		counter := "-"
		if h.CounterAmount != nil {
			counter = fmt.Sprintf("%.2f", *h.CounterAmount)
		}
		rule := h.MatchedRuleID
		if rule == "" {
			rule = "-"
		}
		tw.writef("%s\t%s\t%.2f\t%s\t%s\t%s\t%s\n",
			h.CreatedAt.Format("2006-01-02 15:04"),
			h.OfferID,
			h.OfferAmount,
			h.Action,
			counter,
			rule,
			truncate(h.Reasoning, 40),
		)
	}
	return tw.finish()
}

func printStatsDetail(s *domain.NegotiationStats) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Window:\t%d days\n", s.WindowDays)
	tw.writef("Total Offers:\t%d\n", s.TotalOffers)
	tw.writef("Accepted:\t%d\n", s.Accepted)
	tw.writef("Rejected:\t%d\n", s.Rejected)
	tw.writef("Countered:\t%d\n", s.Countered)
	tw.writef("Ignored:\t%d\n", s.Ignored)
	tw.writef("Acceptance Rate:\t%.1f%%\n", s.AcceptanceRate)
	tw.writef("Avg Discount:\t%.1f%%\n", s.AvgDiscountPct)
	tw.writef("Revenue Saved:\t%.2f\n", s.RevenueSaved)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
