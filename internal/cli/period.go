package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/12dlabs/chemistry/pkg/errors"
	"github.com/12dlabs/chemistry/pkg/periodic"
)

// periodLimit bounds the period command.
const periodLimit = 30

// periodCommand creates the period command listing one row of the table.
func (c *CLI) periodCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "period <n>",
		Short: "List the elements of a period",
		Long: `List every element of a period, synthesizing theoretical elements
for periods past the loaded dataset.`,
		Example: `  chemistry period 2
  chemistry period 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePeriod(args[0])
			if err != nil {
				return err
			}
			reg, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}

			first, last := periodic.PeriodRange(p)
			elems := make([]*periodic.Element, 0, last-first+1)
			for n := first; n <= last; n++ {
				elems = append(elems, reg.Get(n))
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Period %d", p)))
			fmt.Fprintln(w, elementTable(elems).Render())
			printDetail(w, "%d elements, %d to %d", len(elems), first, last)
			return nil
		},
	}
}

func parsePeriod(s string) (int, error) {
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidNumber, err, "period %q is not a number", s)
	}
	if p < 1 || p > periodLimit {
		return 0, errs.New(errs.ErrCodeInvalidNumber, "period must be between 1 and %d, got %d", periodLimit, p)
	}
	return p, nil
}

// listCommand creates the list command filtering the registry.
func (c *CLI) listCommand() *cobra.Command {
	var (
		className string
		blockName string
		period    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored elements, optionally filtered",
		Long: `List the elements held by the registry: the loaded dataset followed by
any theoretical elements synthesized so far.

Classes: ` + strings.Join(classNames(), ", "),
		Example: `  chemistry list --class halogen
  chemistry list --block f --period 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filters []func(*periodic.Element) bool
			if className != "" {
				cl, err := lookupClass(className)
				if err != nil {
					return err
				}
				filters = append(filters, cl.test)
			}
			if blockName != "" {
				b, err := parseBlock(blockName)
				if err != nil {
					return err
				}
				filters = append(filters, func(e *periodic.Element) bool { return e.Block() == b })
			}
			if cmd.Flags().Changed("period") {
				if period < 1 {
					return errs.New(errs.ErrCodeInvalidNumber, "period must be positive, got %d", period)
				}
				filters = append(filters, func(e *periodic.Element) bool { return e.Period() == period })
			}

			reg, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			elems := reg.Filter(func(e *periodic.Element) bool {
				for _, f := range filters {
					if !f(e) {
						return false
					}
				}
				return true
			})

			w := cmd.OutOrStdout()
			if len(elems) == 0 {
				printWarning(w, "No elements match")
				return nil
			}
			fmt.Fprintln(w, elementTable(elems).Render())
			printDetail(w, "%d of %d elements", len(elems), reg.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&className, "class", "", "only elements of this class")
	cmd.Flags().StringVar(&blockName, "block", "", "only elements of this block (s, p, d, ds, f, g, i, j)")
	cmd.Flags().IntVar(&period, "period", 0, "only elements of this period")
	_ = cmd.RegisterFlagCompletionFunc("class", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return classNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("block", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return blockNames, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func elementTable(elems []*periodic.Element) *table.Table {
	rows := make([][]string, len(elems))
	for i, e := range elems {
		rows[i] = []string{
			strconv.Itoa(e.Number()),
			e.Symbol(),
			e.Name(),
			strconv.Itoa(e.Period()),
			formatGroup(e.Group()),
			e.Block().String(),
			formatWeight(e.Weight()),
			e.Category(),
		}
	}
	return newTable("Z", "Symbol", "Name", "Period", "Group", "Block", "Weight", "Category").Rows(rows...)
}
