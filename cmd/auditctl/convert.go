package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuapare/auditkit/audit"
	"github.com/joshuapare/auditkit/audit/report"
	"github.com/joshuapare/auditkit/audit/resindex"
	"github.com/joshuapare/auditkit/pkg/types"
)

var (
	convertResources   string
	convertVersion     string
	convertDescription string
	convertEncoding    string
	convertFilter      string
	convertForce       bool
	convertStdout      bool
	convertSARIF       string
	convertReport      string
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertResources, "resources", "", "Directory of .adml resource documents for description lookup")
	cmd.Flags().StringVar(&convertVersion, "audit-version", "", "check_type version attribute (default \"2\")")
	cmd.Flags().StringVar(&convertDescription, "description", "", "group_policy description text")
	cmd.Flags().StringVar(&convertEncoding, "encoding", "", "Export encoding (UTF-8, UTF-16LE, WINDOWS-1252; default auto-detect)")
	cmd.Flags().StringVar(&convertFilter, "filter", "", "Boolean expression selecting which settings become rules")
	cmd.Flags().BoolVarP(&convertForce, "force", "f", false, "Overwrite the output file without asking")
	cmd.Flags().BoolVar(&convertStdout, "stdout", false, "Write the audit document to stdout instead of a file")
	cmd.Flags().StringVar(&convertSARIF, "sarif", "", "Write conversion diagnostics as SARIF 2.1.0 to this file")
	cmd.Flags().StringVar(&convertReport, "report", "", "Write the conversion report as JSON to this file")

	// Config file and environment can pre-seed these
	_ = viper.BindPFlag("resources", cmd.Flags().Lookup("resources"))
	_ = viper.BindPFlag("audit-version", cmd.Flags().Lookup("audit-version"))
	_ = viper.BindPFlag("description", cmd.Flags().Lookup("description"))

	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <export> [output.audit]",
		Short: "Convert a policy export to a .audit file",
		Long: `The convert command parses an exported Group Policy registry settings file
and writes a Nessus .audit compliance document. Each registry assignment
becomes one REGISTRY_SETTING check; settings whose action has no audit-check
equivalent are dropped and reported.

Example:
  auditctl convert gpo-export.txt workstation.audit
  auditctl convert gpo-export.txt workstation.audit --resources PolicyDefinitions/en-US
  auditctl convert gpo-export.txt --stdout > workstation.audit
  auditctl convert gpo-export.txt workstation.audit --filter 'scope == "Computer"'
  auditctl convert gpo-export.txt workstation.audit --sarif findings.sarif`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	exportPath := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	// Can't specify both output file and stdout
	if outputPath != "" && convertStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	// Need either output file or stdout
	if outputPath == "" && !convertStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}

	idx, err := buildIndex()
	if err != nil {
		return err
	}

	filter, err := audit.CompileFilter(convertFilter)
	if err != nil {
		return err
	}

	// Flag beats config file beats built-in default
	auditVersion := convertVersion
	if auditVersion == "" {
		auditVersion = viper.GetString("audit-version")
	}
	description := convertDescription
	if description == "" {
		description = viper.GetString("description")
	}

	opts := audit.Options{
		Version:     auditVersion,
		Description: description,
		Encoding:    convertEncoding,
		Filter:      filter,
	}

	var res *audit.Result
	if convertStdout {
		data, err := os.ReadFile(exportPath)
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}
		opts.Source = exportPath
		res, err = audit.ConvertBytes(data, os.Stdout, idx, opts)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
	} else {
		opts.Overwrite, err = resolveOverwrite(outputPath)
		if err != nil {
			return err
		}
		res, err = audit.ConvertFile(exportPath, outputPath, idx, opts)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
	}

	if convertReport != "" {
		if err := writeJSONReport(convertReport, res.Report); err != nil {
			return err
		}
	}
	if convertSARIF != "" {
		if err := writeSARIFReport(convertSARIF, res.Report); err != nil {
			return err
		}
	}

	return summarize(res, exportPath, outputPath)
}

// buildIndex indexes the configured resource directory, or returns a nil
// index when none was given.
func buildIndex() (*resindex.Index, error) {
	resources := convertResources
	if resources == "" {
		resources = viper.GetString("resources")
	}
	if resources == "" {
		log.Debug().Msg("no resource directory given, descriptions fall back to item names")
		return nil, nil
	}

	printVerbose("Indexing resources: %s\n", resources)
	idx, err := resindex.Build(resources, resindex.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to index resources: %w", err)
	}

	stats := idx.Stats()
	log.Debug().
		Int("files", stats.Files).
		Int("entries", stats.Entries).
		Msg("resource index built")
	return idx, nil
}

// resolveOverwrite decides whether an existing destination may be replaced:
// --force always allows it, otherwise an interactive run asks and a
// non-interactive run refuses.
func resolveOverwrite(outputPath string) (bool, error) {
	if convertForce {
		return true, nil
	}
	if _, err := os.Stat(outputPath); err != nil {
		return false, nil
	}

	if !isInteractive() {
		return false, fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
	}

	var confirmed bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Overwrite %s?", outputPath)).
		Description("The existing audit file will be replaced.").
		Affirmative("Overwrite").
		Negative("Keep").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	if !confirmed {
		return false, fmt.Errorf("refusing to overwrite %s", outputPath)
	}
	return true, nil
}

// isInteractive checks if stdin is attached to a terminal.
func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// writeJSONReport writes the conversion report as indented JSON.
func writeJSONReport(path string, rep *types.ParseReport) error {
	data, err := rep.FormatJSON()
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := os.WriteFile(path, []byte(data+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Debug().Str("path", path).Msg("wrote conversion report")
	return nil
}

// writeSARIFReport writes conversion diagnostics as SARIF 2.1.0 JSON.
func writeSARIFReport(path string, rep *types.ParseReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SARIF file: %w", err)
	}
	defer f.Close()

	if err := report.NewSARIFFormatter(f, version).Format(rep); err != nil {
		return fmt.Errorf("failed to write SARIF report: %w", err)
	}
	log.Debug().Str("path", path).Msg("wrote SARIF report")
	return nil
}

// summarize prints the conversion outcome. In stdout mode the document owns
// stdout, so the summary only goes to the log.
func summarize(res *audit.Result, exportPath, outputPath string) error {
	sum := res.Report.Summary
	log.Info().
		Int("blocks", sum.Blocks).
		Int("rules", sum.Rules).
		Int("dropped", sum.Skipped+sum.Unrecognized+sum.BadScope+sum.Truncated+sum.Filtered).
		Msg("conversion complete")

	if convertStdout {
		return nil
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"export":  exportPath,
			"output":  outputPath,
			"rules":   res.Rules,
			"summary": sum,
			"success": true,
		})
	}

	printInfo("Wrote %d rules to %s\n", res.Rules, outputPath)
	if res.Report.HasAnyIssues() {
		if verbose {
			printInfo("%s", res.Report.FormatText())
		} else {
			printInfo("%s", res.Report.FormatTextCompact())
		}
	}
	return nil
}
