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

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	theme    string // theme name or .toml path
	captions string // comma-separated caption style override
	output   string // output file path
	refresh  bool   // bypass cache reads
	noCache  bool   // disable caching entirely
}

// planCommand creates the plan command for partitioning a gallery into spreads.
func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan [gallery.json]",
		Short: "Partition a gallery into layout spreads",
		Long: `Plan reads a gallery file and partitions its images into layout
spreads using the selected theme's rule table. The first image always
becomes a full-bleed hero spread, every image appears in exactly one
spread, and the same inputs always produce the same plan.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme name (classic, editorial, mosaic) or .toml path")
	cmd.Flags().StringVar(&opts.captions, "captions", "", "caption style rotation override (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <gallery>.plan.json)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached plan exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")

	return cmd
}

// runPlan loads the gallery, plans it, and writes the plan JSON.
func (c *CLI) runPlan(cmd *cobra.Command, input string, opts *planOpts) error {
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

	pipeOpts := pipeline.Options{
		Theme:          opts.theme,
		CaptionPattern: parseCaptions(opts.captions),
		Refresh:        opts.refresh,
	}

	prog := newProgress(c.Logger)
	spreads, cached, err := runner.PlanWithCacheInfo(cmd.Context(), g, "", pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Planned %d spreads", len(spreads)))

	data, err := render.JSON(spreads)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".plan.json"
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}

	printSuccess("Planned %s", input)
	printFile(outputPath)
	printStats(len(g.Images), len(spreads), cached)
	printNextStep("Render it", fmt.Sprintf("spreadpress render %s -f html", input))
	return nil
}
