package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/pkg/grid"
	gridio "github.com/matzehuels/gridplan/pkg/io"
	"github.com/matzehuels/gridplan/pkg/render"
)

// graphCommand creates the graph command for exporting the constraint graph.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output    string
		positions bool
		lr        bool
	)

	cmd := &cobra.Command{
		Use:   "graph [spec.toml]",
		Short: "Export a spec's constraint graph as DOT, SVG, or PNG",
		Long: `Export a spec's constraint graph as DOT, SVG, or PNG.

Columns become graph nodes and constraints become edges labeled with
their minimum size; elastic constraints are dashed. The output format
follows the --output extension (.dot, .svg, .png); without --output the
DOT source is printed to stdout.

With --positions the spec is solved first and each node's resolved
coordinate is included in its label.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(args[0], output, positions, lr)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot, .svg, or .png)")
	cmd.Flags().BoolVar(&positions, "positions", false, "solve the spec and label nodes with positions")
	cmd.Flags().BoolVar(&lr, "lr", true, "lay the graph out left-to-right")

	return cmd
}

// runGraph loads the spec and writes its constraint graph.
func (c *CLI) runGraph(input, output string, positions, lr bool) error {
	spec, err := gridio.LoadSpec(input)
	if err != nil {
		return fmt.Errorf("load spec: %w", err)
	}

	var placement *grid.Placement
	if positions {
		placement, _, err = solveSpec(spec, frameOverrides{}, c.Logger)
		if err != nil {
			return err
		}
	} else {
		placement, err = spec.Placement()
		if err != nil {
			return err
		}
		placement.SetLogger(c.Logger)
		// Building the desired geometry materializes the constraint
		// graph without committing to an allocation.
		if _, err := placement.DesiredGeometry(); err != nil {
			return fmt.Errorf("desired geometry: %w", err)
		}
	}

	dot := render.ToDOT(placement, render.Options{Positions: positions, RankLR: lr})

	if output == "" {
		fmt.Print(dot)
		return nil
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".dot", ".gv":
		data = []byte(dot)
	case ".svg":
		data, err = render.ToSVG(dot)
	case ".png":
		data, err = render.ToPNG(dot)
	default:
		return fmt.Errorf("unsupported output format %q (want .dot, .svg, or .png)", ext)
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printSuccess("Exported constraint graph")
	printFile(output)
	return nil
}
