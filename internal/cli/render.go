package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlandau/wavetrace/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path, "-" for stdout
	skin    string // skin override for timing diagrams
	strict  bool   // reference dialect only
	refresh bool   // bypass the cache and re-render
	noCache bool   // disable the file cache entirely
}

// renderCommand creates the render command for generating SVG from a
// source document. The input may be a file path or "-" for stdin.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		skin:    c.Config.Skin,
		strict:  c.Config.Strict,
		noCache: c.Config.NoCache,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a source document to SVG",
		Long: `Render a source document to SVG.

The input is a JSON document with a top-level "signal" (timing diagram)
or "reg" (register bitfield) key. Pass "-" to read from stdin. Results
are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout")
	cmd.Flags().StringVar(&opts.skin, "skin", opts.skin, "skin for timing diagrams: default, narrow, dark, lowkey")
	cmd.Flags().BoolVar(&opts.strict, "strict", opts.strict, "reference dialect only, no rendering extensions")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", opts.noCache, "disable caching")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	source, err := readSource(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	res, err := runner.Render(ctx, source, pipeline.Options{
		Skin:    opts.skin,
		Strict:  opts.strict,
		Refresh: opts.refresh,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	out := outputPath(opts.output, input)
	if out == "-" {
		_, err = os.Stdout.Write(res.SVG)
		return err
	}

	if err := os.WriteFile(out, res.SVG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Rendered %s diagram", res.Kind)
	printFile(out)
	printRenderStats(len(res.SVG), res.CacheHit, res.Duration)
	return nil
}

// readSource reads the source document from path, or stdin when path
// is "-".
func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// outputPath derives the output file path. An explicit output wins;
// stdin input without an output goes to stdout; otherwise the input
// path with its extension swapped for .svg.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "-"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}
