package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command for visualizing a
// document's signal hierarchy as a Graphviz node-link diagram.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		output   string
		detailed bool
		dotOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Visualize a document's signal hierarchy",
		Long: `Visualize a document's signal hierarchy.

The inspect command draws the group and lane structure of a timing
diagram as a Graphviz node-link diagram. This is a debugging aid for
documents with deep nesting: it shows containment, not waveforms.

Use --dot to print the DOT source instead of rendering SVG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], output, detailed, dotOnly)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, or - for stdout")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show wave, period and phase per lane")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "print DOT source instead of SVG")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input, output string, detailed, dotOnly bool) error {
	source, err := readSource(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	data, err := runner.Inspect(ctx, source, detailed, dotOnly)
	if err != nil {
		return err
	}

	out := inspectOutputPath(output, input, dotOnly)
	if out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	printSuccess("Inspected %s", input)
	printFile(out)
	return nil
}

func inspectOutputPath(output, input string, dotOnly bool) string {
	if output != "" {
		return output
	}
	if input == "-" || dotOnly {
		return "-"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_hierarchy.svg"
}
