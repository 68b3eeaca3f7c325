package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dangsayz/spreadpress/pkg/spread"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SpreadListModel - Interactive plan preview
// =============================================================================

// SpreadListModel is the bubbletea model for browsing a planned gallery.
type SpreadListModel struct {
	Title   string
	Spreads []spread.DecoratedSpread
	Cursor  int
	Height  int
	Offset  int
}

// NewSpreadListModel creates a preview model for a decorated plan.
func NewSpreadListModel(title string, spreads []spread.DecoratedSpread) SpreadListModel {
	return SpreadListModel{
		Title:   title,
		Spreads: spreads,
		Height:  15,
	}
}

func (m SpreadListModel) Init() tea.Cmd {
	return nil
}

func (m SpreadListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Spreads)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Spreads) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SpreadListModel) View() string {
	var b strings.Builder

	title := m.Title
	if title == "" {
		title = "Gallery Preview"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Spreads) {
		end = len(m.Spreads)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Spreads[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		ids := make([]string, len(d.Spread.Images))
		for j, img := range d.Spread.Images {
			ids[j] = img.ID
		}

		caption := string(d.Caption.Style)
		if d.Caption.Style == spread.CaptionNone {
			caption = "—"
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i+1),
			string(d.Spread.Kind),
			fmt.Sprintf("%d", len(d.Spread.Images)),
			caption,
			strings.Join(ids, ", "),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Kind", "Images", "Caption", "IDs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %s", m.Cursor+1, len(m.Spreads), m.currentDetail())))

	return b.String()
}

// currentDetail summarizes the selected spread for the footer line.
func (m SpreadListModel) currentDetail() string {
	if len(m.Spreads) == 0 {
		return ""
	}
	d := m.Spreads[m.Cursor]
	if d.Caption.Text == "" {
		return string(d.Spread.Kind)
	}
	return fmt.Sprintf("%s · %q", d.Spread.Kind, d.Caption.Text)
}
