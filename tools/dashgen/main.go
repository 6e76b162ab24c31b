package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sellermate/negotiator/tools/dashgen/dashboards"
	"github.com/sellermate/negotiator/tools/dashgen/rules"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	dashJSON, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dashboard: %w", err)
	}
	dashJSON = append(dashJSON, '\n')

	recording := rules.RecordingRules()
	alerts := rules.AlertRules()

	result := ValidateDashboardJSON(dashJSON, KnownMetrics)
	result.Merge(ValidateRules(recording, KnownMetrics))
	result.Merge(ValidateRules(alerts, KnownMetrics))
	if !result.Ok() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "validation: %s\n", e)
		}
		return fmt.Errorf("%d validation errors", len(result.Errors))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	if cfg.DashboardEnabled {
		path := filepath.Join(cfg.OutputDir, "grafana", "data", "negotiator-overview.json")
		if err := writeArtifact(path, dashJSON); err != nil {
			return err
		}
	}

	if cfg.RulesEnabled {
		recordingYAML, err := yaml.Marshal(recording)
		if err != nil {
			return fmt.Errorf("marshaling recording rules: %w", err)
		}
		path := filepath.Join(cfg.OutputDir, "prometheus", "negotiator-recording-rules.yaml")
		if err := writeArtifact(path, append([]byte(generatedHeader), recordingYAML...)); err != nil {
			return err
		}

		alertsYAML, err := yaml.Marshal(alerts)
		if err != nil {
			return fmt.Errorf("marshaling alert rules: %w", err)
		}
		path = filepath.Join(cfg.OutputDir, "prometheus", "negotiator-alerts.yaml")
		if err := writeArtifact(path, append([]byte(generatedHeader), alertsYAML...)); err != nil {
			return err
		}
	}

	return nil
}

func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("dashgen: wrote %s\n", path)
	return nil
}
