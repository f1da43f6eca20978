package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/orcatools/orcals/orca"
)

type fileReport struct {
	File     string         `json:"file" yaml:"file"`
	Findings []orca.Finding `json:"findings" yaml:"findings"`
}

func newCheckCmd() *cobra.Command {
	var outputFormat string
	var configPath string

	cmd := &cobra.Command{
		Use:          "check <file>...",
		Short:        "Parse ORCA input files and report findings",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			reports := make([]fileReport, 0, len(args))
			errorCount := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read input file: %w", err)
				}

				result := orca.Parse(string(data))
				findings := make([]orca.Finding, 0)
				for _, f := range result.Findings() {
					if cfg.Suppressed(f.Message) {
						continue
					}
					if f.Severity == orca.SeverityError {
						errorCount++
					}
					findings = append(findings, f)
				}
				reports = append(reports, fileReport{File: filename, Findings: findings})
			}

			switch outputFormat {
			case "text":
				for _, r := range reports {
					for _, f := range r.Findings {
						fmt.Printf("%s:%d: %s: %s\n", r.File, f.Line, f.Severity, f.Message)
					}
				}
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "yaml":
				out, err := yaml.Marshal(reports)
				if err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				os.Stdout.Write(out)
			default:
				return fmt.Errorf("unknown format: %s (expected text, json, or yaml)", outputFormat)
			}

			if errorCount > 0 {
				return fmt.Errorf("%d error(s) found", errorCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, yaml)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to an orcals YAML configuration file")

	return cmd
}
