package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/pkg/grid"
	gridio "github.com/matzehuels/gridplan/pkg/io"
)

// solveCommand creates the solve command for resolving an axis spec.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		output    string
		size      float64
		center    float64
		expansion float64
	)

	cmd := &cobra.Command{
		Use:   "solve [spec.toml]",
		Short: "Solve an axis spec into concrete column positions",
		Long: `Solve an axis spec into concrete column positions.

The solve command reads a TOML axis spec (cells, growth factors, pins,
and an optional frame), computes the desired minimum geometry, then
distributes the allocated size and prints the resolved position of
every column. Flags override the spec's frame values.

With --output the result is also written as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := frameOverrides{
				size:      flagIfSet(cmd, "size", size),
				center:    flagIfSet(cmd, "center", center),
				expansion: flagIfSet(cmd, "expansion", expansion),
			}
			return c.runSolve(args[0], output, overrides)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write result JSON to file")
	cmd.Flags().Float64Var(&size, "size", 0, "allocated size (default: spec frame or desired minimum)")
	cmd.Flags().Float64Var(&center, "center", 0, "center coordinate (default: spec frame)")
	cmd.Flags().Float64Var(&expansion, "expansion", 0, "share of extra space fed to elastic links, 0..1 (default: spec frame)")

	return cmd
}

// frameOverrides carries flag values that replace the spec's frame.
type frameOverrides struct {
	size      *float64
	center    *float64
	expansion *float64
}

// flagIfSet returns the flag value only when it was set explicitly.
func flagIfSet(cmd *cobra.Command, name string, value float64) *float64 {
	if cmd.Flags().Changed(name) {
		return &value
	}
	return nil
}

// runSolve loads the spec, solves the axis, and prints the result.
func (c *CLI) runSolve(input, output string, overrides frameOverrides) error {
	spec, err := gridio.LoadSpec(input)
	if err != nil {
		return fmt.Errorf("load spec: %w", err)
	}

	_, res, err := solveSpec(spec, overrides, c.Logger)
	if err != nil {
		return err
	}

	printSuccess("Solved %d columns", len(res.Positions))
	printKeyValue("size", fmt.Sprintf("%.3f", res.Size))
	printKeyValue("min size", fmt.Sprintf("%.3f", res.MinSize))
	if res.Degraded {
		printWarning("solver fell back to minimum-size positions")
	}
	printNewline()
	for _, np := range res.Positions {
		printKeyValue(fmt.Sprintf("column %d", np.Node), StyleNumber.Render(fmt.Sprintf("%.3f", np.Position)))
	}

	if output != "" {
		if err := gridio.ExportJSON(res, output); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		printNewline()
		printFile(output)
	}
	return nil
}

// solveSpec runs the desired and final placement passes for a spec,
// applying any frame overrides.
func solveSpec(spec *gridio.Spec, overrides frameOverrides, logger *log.Logger) (*grid.Placement, gridio.Result, error) {
	p, err := spec.Placement()
	if err != nil {
		return nil, gridio.Result{}, err
	}
	p.SetLogger(logger)

	desired, err := p.DesiredGeometry()
	if err != nil {
		return nil, gridio.Result{}, fmt.Errorf("desired geometry: %w", err)
	}

	size := desired.Size()
	if spec.Frame.Size != nil {
		size = *spec.Frame.Size
	}
	if overrides.size != nil {
		size = *overrides.size
	}
	center := spec.Frame.Center
	if overrides.center != nil {
		center = *overrides.center
	}
	expansion := spec.Frame.Expansion
	if overrides.expansion != nil {
		expansion = *overrides.expansion
	}

	if err := p.CalculatePositions(size, center, expansion); err != nil {
		return nil, gridio.Result{}, fmt.Errorf("calculate positions: %w", err)
	}
	return p, gridio.NewResult(p), nil
}
