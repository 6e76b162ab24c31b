package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/sellermate/negotiator/tools/dashgen/rules"
)

// ValidationResult collects errors found while checking generated artifacts.
type ValidationResult struct {
	Errors []string
}

// Ok reports whether validation passed.
func (r *ValidationResult) Ok() bool {
	return len(r.Errors) == 0
}

// Merge appends another result's errors.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
}

func (r *ValidationResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ValidateDashboardJSON checks every PromQL expression embedded in a
// marshaled dashboard: each must parse, and every metric it selects must be
// one the negotiator actually exports.
func ValidateDashboardJSON(data []byte, known map[string]bool) ValidationResult {
	var result ValidationResult

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		result.errorf("unmarshaling dashboard: %v", err)
		return result
	}

	for _, expr := range collectExprs(doc) {
		checkExpr(&result, expr, known)
	}
	return result
}

// ValidateRules checks every rule expression in a PrometheusRule CR.
func ValidateRules(cr rules.PrometheusRule, known map[string]bool) ValidationResult {
	var result ValidationResult
	for _, group := range cr.Spec.Groups {
		for _, rule := range group.Rules {
			checkExpr(&result, rule.Expr, known)
		}
	}
	return result
}

func checkExpr(result *ValidationResult, expr string, known map[string]bool) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		result.errorf("invalid PromQL %q: %v", expr, err)
		return
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			if !known[vs.Name] {
				result.errorf("unknown metric %q in expression %q", vs.Name, expr)
			}
		}
		return nil
	})
}

// collectExprs walks arbitrary JSON and gathers every string value keyed "expr".
func collectExprs(doc any) []string {
	var exprs []string
	switch v := doc.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if s, ok := val.(string); ok && s != "" {
					exprs = append(exprs, s)
					continue
				}
			}
			exprs = append(exprs, collectExprs(val)...)
		}
	case []any:
		for _, item := range v {
			exprs = append(exprs, collectExprs(item)...)
		}
	}
	return exprs
}
