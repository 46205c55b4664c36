package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplan/pkg/grid"
	gridio "github.com/matzehuels/gridplan/pkg/io"
)

// tuneCommand creates the tune command for interactively adjusting a frame.
func (c *CLI) tuneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune [spec.toml]",
		Short: "Interactively tune size, center, and expansion for a spec",
		Long: `Interactively tune size, center, and expansion for a spec.

The tune command opens a terminal UI that re-solves the axis on every
keypress, so you can watch how column positions respond to the frame
parameters. Use up/down to pick a parameter, left/right to adjust it,
r to reset to the spec's frame, and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTune(args[0])
		},
	}

	return cmd
}

// runTune loads the spec and drives the interactive tuner.
func (c *CLI) runTune(input string) error {
	spec, err := gridio.LoadSpec(input)
	if err != nil {
		return fmt.Errorf("load spec: %w", err)
	}

	p, err := spec.Placement()
	if err != nil {
		return err
	}
	p.SetLogger(c.Logger)

	desired, err := p.DesiredGeometry()
	if err != nil {
		return fmt.Errorf("desired geometry: %w", err)
	}

	model := newTuneModel(p, spec, desired.Size())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run tuner: %w", err)
	}

	m := final.(tuneModel)
	printSuccess("Final frame")
	printKeyValue("size", fmt.Sprintf("%.3f", m.size))
	printKeyValue("center", fmt.Sprintf("%.3f", m.center))
	printKeyValue("expansion", fmt.Sprintf("%.2f", m.expansion))
	return nil
}

// =============================================================================
// TuneModel - Interactive frame tuning
// =============================================================================

// Tunable parameters, in cursor order.
const (
	paramSize = iota
	paramCenter
	paramExpansion
	paramCount
)

var paramNames = [paramCount]string{"size", "center", "expansion"}

// tuneModel is the bubbletea model for the interactive tuner.
type tuneModel struct {
	placement *grid.Placement
	spec      *gridio.Spec
	minSize   float64

	size      float64
	center    float64
	expansion float64

	cursor  int
	solveErr error
}

func newTuneModel(p *grid.Placement, spec *gridio.Spec, minSize float64) tuneModel {
	m := tuneModel{
		placement: p,
		spec:      spec,
		minSize:   minSize,
	}
	m.reset()
	m.solve()
	return m
}

// reset restores the spec's frame values.
func (m *tuneModel) reset() {
	m.size = m.minSize
	if m.spec.Frame.Size != nil {
		m.size = *m.spec.Frame.Size
	}
	m.center = m.spec.Frame.Center
	m.expansion = m.spec.Frame.Expansion
}

// solve re-runs the placement with the current frame.
func (m *tuneModel) solve() {
	m.solveErr = m.placement.CalculatePositions(m.size, m.center, m.expansion)
}

// step returns the adjustment increment for the selected parameter.
func (m *tuneModel) step() float64 {
	if m.cursor == paramExpansion {
		return 0.05
	}
	return 0.5
}

// adjust shifts the selected parameter by delta and clamps it.
func (m *tuneModel) adjust(delta float64) {
	switch m.cursor {
	case paramSize:
		m.size += delta
		if m.size < 0 {
			m.size = 0
		}
	case paramCenter:
		m.center += delta
	case paramExpansion:
		m.expansion += delta
		if m.expansion < 0 {
			m.expansion = 0
		}
		if m.expansion > 1 {
			m.expansion = 1
		}
	}
	m.solve()
}

func (m tuneModel) Init() tea.Cmd {
	return nil
}

func (m tuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < paramCount-1 {
				m.cursor++
			}
		case "left", "h":
			m.adjust(-m.step())
		case "right", "l":
			m.adjust(m.step())
		case "r":
			m.reset()
			m.solve()
		}
	}
	return m, nil
}

func (m tuneModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tune Frame"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ parameter  ←/→ adjust  r reset  q quit"))
	b.WriteString("\n\n")

	values := [paramCount]string{
		fmt.Sprintf("%.3f", m.size),
		fmt.Sprintf("%.3f", m.center),
		fmt.Sprintf("%.2f", m.expansion),
	}
	for i := range paramCount {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-10s %s", cursor, paramNames[i], values[i])
		if i == m.cursor {
			b.WriteString(StyleNumber.Render(line))
		} else {
			b.WriteString(StyleValue.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  minimum size %.3f", m.minSize)))
	b.WriteString("\n\n")

	if m.solveErr != nil {
		b.WriteString(StyleWarning.Render("solve failed: " + m.solveErr.Error()))
		b.WriteString("\n")
		return b.String()
	}

	rows := [][]string{}
	for _, col := range m.placement.Columns() {
		pos, ok := m.placement.Position(col)
		value := "—"
		if ok {
			value = fmt.Sprintf("%.3f", pos)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", col), value})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Column", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.placement.Degraded() {
		b.WriteString(StyleWarning.Render("! solver degraded to minimum-size positions"))
		b.WriteString("\n")
	}

	return b.String()
}
