package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dangsayz/spreadpress/internal/server"
	"github.com/dangsayz/spreadpress/pkg/cache"
	"github.com/dangsayz/spreadpress/pkg/pipeline"
	"github.com/dangsayz/spreadpress/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	redisAddr string // Redis address for the shared cache
	mongoURI  string // MongoDB connection string for the gallery store
	mongoDB   string // MongoDB database name
	noCache   bool   // disable caching entirely
}

// serveCommand creates the serve command for running the HTTP API.
//
// Backends degrade gracefully: without --mongo-uri galleries live in
// memory, and without --redis the cache is the local file cache.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Spreadpress HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for a shared cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection string for gallery storage")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", "", "MongoDB database name (default: spreadpress)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan and artifact cache")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()

	st, err := c.newStore(cmd, opts)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	cch, err := c.newServerCache(ctx, opts)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(cch, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{Addr: opts.addr}, st, runner, c.Logger)
	return srv.Serve(ctx)
}

// newStore selects the gallery store backend.
func (c *CLI) newStore(cmd *cobra.Command, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI == "" {
		c.Logger.Warn("no --mongo-uri set, galleries are stored in memory")
		return store.NewMemoryStore(), nil
	}
	c.Logger.Info("connecting to mongodb")
	return store.NewMongoStore(cmd.Context(), store.MongoConfig{
		URI:      opts.mongoURI,
		Database: opts.mongoDB,
	})
}

// newServerCache selects the cache backend for the server.
func (c *CLI) newServerCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		c.Logger.Info("connecting to redis", "addr", opts.redisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
	}
	return newCache(false)
}
