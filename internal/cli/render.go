package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dangsayz/spreadpress/pkg/gallery"
	"github.com/dangsayz/spreadpress/pkg/pipeline"
	"github.com/dangsayz/spreadpress/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	theme    string // theme name or .toml path
	captions string // comma-separated caption style override
	formats  string // comma-separated output formats
	output   string // output file (single format) or base path (multiple)
	title    string // page title override
	refresh  bool   // bypass cache reads
	noCache  bool   // disable caching entirely
}

// renderCommand creates the render command for generating artifacts.
// It runs the full pipeline: plan the gallery, decorate it with captions,
// and render one artifact per requested format.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [gallery.json]",
		Short: "Render a gallery as JSON or HTML artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], formats, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme name (classic, editorial, mosaic) or .toml path")
	cmd.Flags().StringVar(&opts.captions, "captions", "", "caption style rotation override (comma-separated)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): json (default), html (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title (default: gallery title)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached artifacts exist")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender loads the gallery, runs the pipeline, and writes each artifact.
func (c *CLI) runRender(cmd *cobra.Command, input string, formats []string, opts *renderOpts) error {
	g, err := gallery.ReadFile(input)
	if err != nil {
		return err
	}
	c.Logger.Info("loaded gallery", "id", g.ID, "images", len(g.Images))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), g, pipeline.Options{
		Theme:          opts.theme,
		CaptionPattern: parseCaptions(opts.captions),
		Formats:        formats,
		Title:          opts.title,
		Refresh:        opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(result.Artifacts)))

	printSuccess("Rendered %s", input)
	for _, format := range formats {
		path := artifactPath(opts.output, input, format, len(formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s artifact: %w", format, err)
		}
		printFile(path)
	}
	printStats(result.Stats.ImageCount, result.Stats.SpreadCount, result.CacheInfo.RenderHit)
	return nil
}

// artifactPath derives the output path for one artifact. A single format
// uses the output flag as-is; multiple formats treat it as a base path.
func artifactPath(output, input, format string, formatCount int) string {
	if output != "" && formatCount == 1 {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else {
		ext := filepath.Ext(base)
		if render.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
			base = strings.TrimSuffix(base, ext)
		}
	}
	return base + "." + format
}
