package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/internal/server"
	"github.com/matzehuels/texttree/pkg/cache"
	"github.com/matzehuels/texttree/pkg/store"
)

type serveOpts struct {
	format  formatFlags
	addr    string
	redis   string
	mongo   string
	dataDir string
	noCache bool
}

// serveCommand creates the serve command that runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Saved trees are kept in memory unless --mongo or --data-dir is given.
Rendered output is cached on disk unless --redis is given.`,
		Example: `  texttree serve --addr :8080
  texttree serve --redis redis://localhost:6379/0 --mongo mongodb://localhost:27017`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	opts.format.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis URL for the shared render cache")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI for saved trees")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "directory for saved trees (file store)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	defaults, err := opts.format.resolve(cmd)
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var rc cache.Cache
	if opts.redis != "" && !opts.noCache {
		rc, err = cache.NewRedisCache(connectCtx, cache.RedisConfig{URL: opts.redis, Prefix: appName + ":"})
		if err != nil {
			return err
		}
		logger.Info("using redis cache", "url", opts.redis)
	} else if rc, err = newCache(opts.noCache); err != nil {
		return err
	}

	var st store.Store
	kind := "memory"
	switch {
	case opts.mongo != "":
		kind = "mongo"
		st, err = store.NewMongoStore(connectCtx, store.MongoConfig{URI: opts.mongo})
	case opts.dataDir != "":
		kind = "file"
		st, err = store.NewFileStore(opts.dataDir)
	default:
		st = store.NewMemoryStore()
	}
	if err != nil {
		_ = rc.Close()
		return err
	}
	logger.Debug("tree store ready", "kind", kind)

	srv := server.New(server.Config{
		Store:    st,
		Cache:    rc,
		Logger:   logger,
		Defaults: &defaults,
	})
	defer srv.Close()

	return srv.ListenAndServe(ctx, opts.addr)
}
