package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/12dlabs/chemistry/pkg/periodic"
	"github.com/12dlabs/chemistry/pkg/registry"
	"github.com/12dlabs/chemistry/pkg/render"
)

// tableCommand creates the table command drawing the grid in the terminal.
func (c *CLI) tableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Draw the periodic table in the terminal",
		Long: `Draw the periodic table as a grid of symbols coloured by block.
Interior (f, g, i, j block) elements are listed below the main grid.`,
		Example: `  chemistry table
  chemistry table --max-period 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			maxPeriod := c.cfg.Table.MaxPeriod
			grid := render.Layout(periodElements(reg, maxPeriod), maxPeriod)
			fmt.Fprintln(cmd.OutOrStdout(), terminalTable(grid))
			return nil
		},
	}

	cmd.Flags().Int("max-period", c.cfg.Table.MaxPeriod, "last period to draw")
	c.bind("table.max_period", cmd.Flags().Lookup("max-period"))

	return cmd
}

// periodElements returns every element of periods 1 to maxPeriod,
// synthesizing the ones the registry does not hold yet.
func periodElements(reg *registry.Registry, maxPeriod int) []*periodic.Element {
	_, last := periodic.PeriodRange(maxPeriod)
	elems := make([]*periodic.Element, 0, max(last, 0))
	for n := 1; n <= last; n++ {
		if e := reg.Get(n); e != nil {
			elems = append(elems, e)
		}
	}
	return elems
}

// terminalTable renders grid with one cell per element symbol.
func terminalTable(grid render.Grid) string {
	var cells [][]*periodic.Element
	for _, row := range grid.Main {
		cells = append(cells, row[:])
	}
	for _, row := range grid.Interior {
		cells = append(cells, append([]*periodic.Element{nil, nil}, row.Elements...))
	}

	width := render.Groups
	for _, row := range cells {
		width = max(width, len(row))
	}

	rows := make([][]string, len(cells))
	for i, row := range cells {
		rows[i] = make([]string, width)
		for j, e := range row {
			if e != nil {
				rows[i][j] = e.Symbol()
			}
		}
	}

	headers := make([]string, width)
	for g := 1; g <= render.Groups; g++ {
		headers[g-1] = fmt.Sprint(g)
	}

	cell := lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		BorderRow(false).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Inherit(cell)
			}
			if row < len(cells) && col < len(cells[row]) {
				if e := cells[row][col]; e != nil {
					return blockStyle(e.Block()).Inherit(cell)
				}
			}
			return cell
		}).
		Render()
}
