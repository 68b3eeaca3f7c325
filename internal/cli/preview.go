package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dangsayz/spreadpress/pkg/gallery"
	"github.com/dangsayz/spreadpress/pkg/pipeline"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	theme    string
	captions string
	noCache  bool
}

// previewCommand creates the preview command for browsing a plan in the
// terminal. It plans the gallery and opens an interactive spread list.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview [gallery.json]",
		Short: "Browse a gallery's plan interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme name (classic, editorial, mosaic) or .toml path")
	cmd.Flags().StringVar(&opts.captions, "captions", "", "caption style rotation override (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, input string, opts *previewOpts) error {
	g, err := gallery.ReadFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spreads, err := runner.Plan(cmd.Context(), g, pipeline.Options{
		Theme:          opts.theme,
		CaptionPattern: parseCaptions(opts.captions),
	})
	if err != nil {
		return err
	}

	if len(spreads) == 0 {
		printWarning("Gallery %s has no images", g.ID)
		return nil
	}

	model := NewSpreadListModel(g.Title, spreads)
	_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	return err
}
