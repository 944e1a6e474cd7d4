// Command deckconv converts a JSON deck specification into a .pptx
// presentation, and extracts a compact JSON tree back out of existing
// presentations.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deckforge/deckconv"
	"github.com/deckforge/deckconv/analyze"
	"github.com/deckforge/deckconv/pptx"
	"github.com/deckforge/deckconv/render"
	"github.com/deckforge/deckconv/spec"
)

var (
	configFile string
	verbose    bool
)

func main() {
	// Environment overrides may come from a local .env; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "deckconv",
		Short: "Convert between JSON deck specs and presentation files",
		Long: `deckconv builds .pptx presentations from a loosely structured JSON
deck specification, and analyzes existing presentations back into a
compact JSON element tree.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	buildCmd := &cobra.Command{
		Use:   "build <spec.json>",
		Short: "Build a presentation from a JSON deck spec",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringP("output", "o", "deck.pptx", "Output .pptx path")
	rootCmd.AddCommand(buildCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze <deck.pptx>",
		Short: "Extract a JSON element tree from a presentation",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringP("output", "o", "", "Output JSON path (default stdout)")
	analyzeCmd.Flags().Bool("pretty", false, "Indent the JSON output")
	rootCmd.AddCommand(analyzeCmd)

	batchCmd := &cobra.Command{
		Use:   "batch <deck.pptx>...",
		Short: "Analyze several presentations and print a summary",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringP("output-dir", "o", "", "Directory for per-file JSON results")
	batchCmd.Flags().Bool("pretty", false, "Indent the JSON output")
	rootCmd.AddCommand(batchCmd)

	if err := rootCmd.Execute(); err != nil {
		printError("Error: %v", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runBuild(cmd *cobra.Command, args []string) error {
	specPath := args[0]
	outPath, _ := cmd.Flags().GetString("output")

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("failed to read spec: %w", err)
	}

	deck, err := spec.Decode(raw)
	if err != nil {
		return fmt.Errorf("failed to parse spec: %w", err)
	}

	opts := cfg.RenderOptions()
	opts.Logger = newLogger()
	defer opts.Logger.Sync() //nolint:errcheck

	w := pptx.NewWriter()
	n, err := render.NewBuilder(opts).Build(deck, w)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()
	if err := w.Save(out); err != nil {
		return fmt.Errorf("failed to save presentation: %w", err)
	}

	printSuccess("Wrote %s (%d slides)", outPath, n)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inPath := args[0]
	outPath, _ := cmd.Flags().GetString("output")
	pretty, _ := cmd.Flags().GetBool("pretty")

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	pretty = pretty || cfg.Output.Pretty

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read presentation: %w", err)
	}
	res, err := deckconv.AnalyzePPTX(data, filepath.Base(inPath), logger)
	if err != nil {
		return err
	}
	buf, err := res.MarshalCompact(pretty)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Println(string(buf))
		return nil
	}
	if err := os.WriteFile(outPath, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	printSuccess("Wrote %s", outPath)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("output-dir")
	pretty, _ := cmd.Flags().GetBool("pretty")

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	a := &analyze.Analyzer{Logger: logger}
	rep := a.AnalyzeBatch(pptx.Open, os.ReadFile, args)

	for key, reason := range rep.Failed {
		printError("%s: %s", key, reason)
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
		for _, key := range rep.Processed {
			res := rep.Results[key]
			buf, err := res.MarshalCompact(pretty)
			if err != nil {
				return err
			}
			name := res.FileName[:len(res.FileName)-len(filepath.Ext(res.FileName))] + ".json"
			if err := os.WriteFile(filepath.Join(outDir, name), buf, 0o644); err != nil {
				return fmt.Errorf("failed to write result for %s: %w", key, err)
			}
		}
		printInfo("Results written to %s", outDir)
	}
	printSuccess("%s", rep.Summary)
	if len(rep.Failed) > 0 {
		return fmt.Errorf("%d file(s) failed", len(rep.Failed))
	}
	return nil
}
