package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlandau/wavetrace/internal/server"
	"github.com/mlandau/wavetrace/pkg/cache"
	"github.com/mlandau/wavetrace/pkg/pipeline"
	"github.com/mlandau/wavetrace/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	redis    string // Redis address for the artifact cache
	mongoURI string // MongoDB connection string for the gallery
	mongoDB  string // MongoDB database name
	noCache  bool   // disable artifact caching entirely
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:     c.Config.Addr,
		redis:    c.Config.Redis,
		mongoURI: c.Config.MongoURI,
		mongoDB:  c.Config.MongoDatabase,
		noCache:  c.Config.NoCache,
	}
	if opts.addr == "" {
		opts.addr = ":8080"
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render and gallery API",
		Long: `Run the HTTP render and gallery API.

POST /api/render renders a document to SVG. /api/diagrams is a small
CRUD gallery for saved documents. Without --redis the artifact cache
lives on disk; without --mongo-uri the gallery lives in memory and is
lost on restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", opts.redis, "Redis address for the artifact cache")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB connection string for the gallery")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", opts.noCache, "disable artifact caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	artifacts, err := c.serveCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	st, err := c.serveStore(ctx, opts)
	if err != nil {
		artifacts.Close()
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close(context.Background())

	runner := pipeline.NewRunner(artifacts, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Runner: runner,
		Store:  st,
		Logger: c.Logger,
	})
	return srv.ListenAndServe(opts.addr)
}

func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		c.Logger.Info("using redis cache", "addr", opts.redis)
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redis})
	}
	return newCache(false)
}

func (c *CLI) serveStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI != "" {
		c.Logger.Info("using mongodb gallery store", "database", opts.mongoDB)
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      opts.mongoURI,
			Database: opts.mongoDB,
		})
	}
	c.Logger.Info("using in-memory gallery store")
	return store.NewMemoryStore(), nil
}
