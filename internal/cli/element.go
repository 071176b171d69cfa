package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/12dlabs/chemistry/pkg/periodic"
)

// elementCommand creates the element command showing one element.
func (c *CLI) elementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "element <number|symbol>",
		Short: "Show an element's position, weight and classification",
		Long: `Show details for one element, given as an atomic number or a symbol.

Numbers past the loaded dataset name a theoretical element, which is
synthesized with its systematic IUPAC name.`,
		Example: `  chemistry element Fe
  chemistry element 26
  chemistry element 119`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			e, err := resolve(reg, args[0])
			if err != nil {
				return err
			}
			writeElement(cmd, e, reg.SeededLen())
			return nil
		},
	}
}

func writeElement(cmd *cobra.Command, e *periodic.Element, seeded int) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, StyleTitle.Render(e.Name()))

	pos := e.Position()
	printKeyValue(w, "Symbol", e.Symbol())
	printKeyValue(w, "Number", strconv.Itoa(e.Number()))
	printKeyValue(w, "Period", strconv.Itoa(pos.Period))
	printKeyValue(w, "Group", formatGroup(pos.Group))
	printKeyValue(w, "Block", pos.Block.String())
	printKeyValue(w, "Weight", formatWeight(e.Weight()))
	printKeyValue(w, "Category", e.Category())
	printKeyValue(w, "Classes", strings.Join(classesOf(e), ", "))
	printKeyValue(w, "Isotopes", strconv.Itoa(len(e.Isotopes())))
	if e.Number() > seeded {
		printDetail(w, "Theoretical element, not in the loaded dataset")
	}
}

// isotopesCommand creates the isotopes command listing an element's isotopes.
func (c *CLI) isotopesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "isotopes <number|symbol>",
		Short:   "List the recorded isotopes of an element",
		Example: `  chemistry isotopes C`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			e, err := resolve(reg, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			isotopes := e.Isotopes()
			if len(isotopes) == 0 {
				printInfo(w, "%s has no recorded isotopes", e.Name())
				return nil
			}

			rows := make([][]string, len(isotopes))
			for i, iso := range isotopes {
				rows[i] = []string{
					iso.String(),
					strconv.Itoa(iso.Mass()),
					strconv.Itoa(iso.Neutrons()),
					formatWeight(iso.Weight()),
				}
			}

			fmt.Fprintln(w, StyleTitle.Render(e.Name()+" isotopes"))
			fmt.Fprintln(w, newTable("Nuclide", "Mass", "Neutrons", "Weight").Rows(rows...).Render())
			return nil
		},
	}
}

// newTable creates a table in the CLI's house style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
