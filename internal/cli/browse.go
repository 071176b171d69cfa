package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/12dlabs/chemistry/pkg/periodic"
	"github.com/12dlabs/chemistry/pkg/registry"
)

// browseCommand creates the interactive element browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse elements interactively",
		Long: `Browse the element registry in a full-screen list.

Keys: ↑/↓ or j/k move, pgup/pgdn page, g/G jump to the ends, i toggles
isotopes, + synthesizes the next theoretical element, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			p := tea.NewProgram(
				newBrowseModel(reg),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			return nil
		},
	}
}

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	listPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// browseModel - Interactive element list
// =============================================================================

type browseModel struct {
	reg          *registry.Registry
	elems        []*periodic.Element
	cursor       int
	offset       int
	height       int
	showIsotopes bool
}

func newBrowseModel(reg *registry.Registry) browseModel {
	return browseModel{
		reg:    reg,
		elems:  reg.All(),
		height: 15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.cursor - 1)
		case "down", "j":
			m.moveTo(m.cursor + 1)
		case "pgup":
			m.moveTo(m.cursor - m.height)
		case "pgdown":
			m.moveTo(m.cursor + m.height)
		case "home", "g":
			m.moveTo(0)
		case "end", "G":
			m.moveTo(len(m.elems) - 1)
		case "i":
			m.showIsotopes = !m.showIsotopes
		case "+":
			if e := m.reg.Get(m.nextNumber()); e != nil {
				m.elems = m.reg.All()
				m.moveTo(len(m.elems) - 1)
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-16, 5)
		m.moveTo(m.cursor)
	}
	return m, nil
}

// nextNumber returns the atomic number following the highest stored one.
func (m browseModel) nextNumber() int {
	highest := 0
	for _, e := range m.elems {
		highest = max(highest, e.Number())
	}
	return highest + 1
}

// moveTo places the cursor at i, clamped to the list, and scrolls it into view.
func (m *browseModel) moveTo(i int) {
	m.cursor = min(max(i, 0), max(len(m.elems)-1, 0))
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m browseModel) selected() *periodic.Element {
	if len(m.elems) == 0 {
		return nil
	}
	return m.elems[m.cursor]
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Elements"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  i isotopes  + next theoretical  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.elems))
	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		e := m.elems[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, strconv.Itoa(e.Number()), e.Symbol(), e.Name(), e.Category()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "Z", "Symbol", "Name", "Category").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.offset + row
			if idx >= len(m.elems) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 2 {
				base = blockStyle(m.elems[idx].Block())
			}
			if idx == m.cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if e := m.selected(); e != nil {
		b.WriteString(listPanelStyle.Render(m.detail(e)))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.elems))))

	return b.String()
}

// detail renders the panel for the selected element.
func (m browseModel) detail(e *periodic.Element) string {
	pos := e.Position()
	lines := []string{
		StyleTitle.Render(e.String()) + " " + StyleValue.Render(e.Name()),
		fmt.Sprintf("period %d · group %s · block %s", pos.Period, formatGroup(pos.Group), pos.Block),
		"weight " + formatWeight(e.Weight()) + " · " + strings.Join(classesOf(e), ", "),
	}
	if e.Number() > m.reg.SeededLen() {
		lines = append(lines, StyleWarning.Render("theoretical"))
	}
	if m.showIsotopes {
		isotopes := e.Isotopes()
		if len(isotopes) == 0 {
			lines = append(lines, listDimStyle.Render("no recorded isotopes"))
		}
		for _, iso := range isotopes {
			lines = append(lines, fmt.Sprintf("  %-8s %3d neutrons  %s", iso.String(), iso.Neutrons(), formatWeight(iso.Weight())))
		}
	}
	return strings.Join(lines, "\n")
}
