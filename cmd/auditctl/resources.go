package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/joshuapare/auditkit/audit/resindex"
)

var (
	resourcesDump     bool
	resourcesResolve  string
	resourcesOutput   string
	resourcesEncoding string
)

func init() {
	cmd := newResourcesCmd()
	cmd.Flags().BoolVar(&resourcesDump, "dump", false, "Print every merged id/text entry")
	cmd.Flags().StringVar(&resourcesResolve, "resolve", "", "Resolve one item name through the index and print its description")
	cmd.Flags().StringVarP(&resourcesOutput, "output", "o", "", "Output format (text, json, yaml)")
	cmd.Flags().StringVar(&resourcesEncoding, "encoding", "", "Document encoding (default auto-detect)")
	rootCmd.AddCommand(cmd)
}

func newResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources <dir>",
		Short: "Inspect policy-definition resource documents",
		Long: `The resources command scans a directory of .adml resource documents and
shows what the description index would contain. Use it to verify a resource
directory before converting, or to debug why an item resolves the way it
does.

Example:
  auditctl resources PolicyDefinitions/en-US
  auditctl resources PolicyDefinitions/en-US --dump
  auditctl resources PolicyDefinitions/en-US --dump --output yaml
  auditctl resources PolicyDefinitions/en-US --resolve EnableSmartScreen`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResources(args)
		},
	}
	return cmd
}

func runResources(args []string) error {
	dir := args[0]
	opts := resindex.DefaultOptions()
	opts.Encoding = resourcesEncoding

	if resourcesResolve != "" {
		return resolveItem(dir, opts)
	}
	if resourcesDump {
		return dumpEntries(dir, opts)
	}
	return listDocuments(dir, opts)
}

// resolveItem builds the index and resolves a single item the way convert
// would.
func resolveItem(dir string, opts resindex.Options) error {
	idx, err := resindex.Build(dir, opts)
	if err != nil {
		return fmt.Errorf("failed to index resources: %w", err)
	}

	resolved := idx.ResolveItem(resourcesResolve)
	if resolved == resourcesResolve {
		printVerbose("no id ends in %q; item resolves to itself\n", resourcesResolve)
	}
	fmt.Println(resolved)
	return nil
}

// dumpEntries prints the merged index contents in lookup-sequence order.
func dumpEntries(dir string, opts resindex.Options) error {
	idx, err := resindex.Build(dir, opts)
	if err != nil {
		return fmt.Errorf("failed to index resources: %w", err)
	}
	entries := idx.Entries()

	switch outputFormat() {
	case "json":
		return printJSON(entries)
	case "yaml":
		return printYAML(entries)
	default:
		for _, e := range entries {
			fmt.Printf("%s\t%s\n", e.ID, e.Text)
		}
	}

	stats := idx.Stats()
	printVerbose("%d entries from %d files\n", stats.Entries, stats.Files)
	return nil
}

// listDocuments shows each matching document with its entry count.
func listDocuments(dir string, opts resindex.Options) error {
	infos, err := resindex.Scan(dir, opts)
	if err != nil {
		return fmt.Errorf("failed to scan resources: %w", err)
	}

	switch outputFormat() {
	case "json":
		return printJSON(infos)
	case "yaml":
		return printYAML(infos)
	default:
		total := 0
		for _, fi := range infos {
			fmt.Printf("%-48s %6d entries\n", fi.Name, fi.Entries)
			total += fi.Entries
		}
		printInfo("%d documents, %d entries\n", len(infos), total)
	}
	return nil
}

// outputFormat resolves the effective output format; the global --json flag
// applies when --output was not given.
func outputFormat() string {
	if resourcesOutput != "" {
		return resourcesOutput
	}
	if jsonOut {
		return "json"
	}
	return "text"
}

// printYAML outputs data as YAML
func printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render YAML: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
