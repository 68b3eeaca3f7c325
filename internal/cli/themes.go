package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dangsayz/spreadpress/pkg/spread"
	"github.com/dangsayz/spreadpress/pkg/theme"
)

// themesCommand creates the themes command for inspecting layout themes.
// Without arguments it lists the built-in themes; with a name (or a .toml
// path) it prints that theme's rule table.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes [name]",
		Short: "List built-in layout themes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showTheme(args[0])
			}
			return listThemes()
		},
	}
}

// listThemes prints a summary table of the built-in themes.
func listThemes() error {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, name := range theme.Names() {
		t, err := theme.Get(name)
		if err != nil {
			return err
		}

		kinds := make([]string, len(t.Rules))
		for i, r := range t.Rules {
			kinds[i] = string(r.Kind)
		}

		captions := make([]string, len(t.Captions))
		for i, s := range t.Captions {
			captions[i] = string(s)
		}

		rows = append(rows, []string{t.Name, strings.Join(kinds, ", "), strings.Join(captions, ", ")})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Theme", "Rules", "Captions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleDim
		})

	fmt.Println(tbl.Render())
	printNextStep("Inspect a theme", "spreadpress themes editorial")
	return nil
}

// showTheme prints one theme's full rule table.
func showTheme(name string) error {
	t, err := theme.Resolve(name)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(t.Name))
	fmt.Println()

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := [][]string{}
	for _, r := range t.Rules {
		period := "always"
		if r.Every > 0 {
			period = fmt.Sprintf("every %d (offset %d)", r.Every, r.Offset)
		}
		rows = append(rows, []string{
			string(r.Kind),
			fmt.Sprintf("%d", r.Kind.Cardinality()),
			fmt.Sprintf("%d", r.MinRemaining),
			period,
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Images", "Min Remaining", "Period").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})
	fmt.Println(tbl.Render())

	captions := t.Captions
	if len(captions) == 0 {
		captions = spread.DefaultCaptionPattern
	}
	parts := make([]string, len(captions))
	for i, s := range captions {
		parts[i] = string(s)
	}
	printDetail("Caption rotation: %s", strings.Join(parts, " → "))
	printDetail("Fallback: single-centered → offset-left → offset-right")
	return nil
}
