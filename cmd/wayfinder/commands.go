package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/dfs"
	"github.com/katalvlaran/wayfinder/server"
	"github.com/katalvlaran/wayfinder/sqlstore"
)

func newRouteCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Print step-by-step directions between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()

			res := a.engine.ComputeRoute(cmd.Context(), args[0], args[1])
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderRoute(res))
			return res.Err
		},
	}
}

func newLocationsCmd(cfgPath *string) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List known locations grouped by level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()

			locs, err := a.dir.Locations()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("level") {
				locs = core.GroupByLevel(locs)[level]
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderLevels(locs))
			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", 0, "only list this level")
	return cmd
}

func newReachableCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reachable <from>",
		Short: "List every location reachable from a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()

			ids, err := a.engine.Reachable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			locs := make([]core.Location, 0, len(ids))
			for _, id := range ids {
				loc, err := a.dir.Location(id)
				if err != nil {
					return err
				}
				locs = append(locs, loc)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderLevels(locs))
			return nil
		},
	}
}

func newStatsCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()

			st, err := a.dir.Stats()
			if err != nil {
				return err
			}
			islands, err := dfs.Islands(cmd.Context(), a.dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderStats(st, islands))
			return nil
		},
	}
}

func newScanCmd(cfgPath *string) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "scan <location>",
		Short: "Resolve a scanned marker, record it and optionally route from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()

			loc, err := a.dir.Location(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, titleStyle.Render("You are at"), renderLocation(loc))
			if a.store != nil {
				scan, err := a.store.LogScan(cmd.Context(), loc.ID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, dimStyle.Render("scan "+scan.ID.String()))
			}
			if strings.TrimSpace(to) == "" {
				return nil
			}
			res := a.engine.ComputeRoute(cmd.Context(), loc.ID, to)
			_, _ = fmt.Fprintln(out, renderRoute(res))
			return res.Err
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "destination to route to")
	return cmd
}

func newScansCmd(cfgPath *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scans",
		Short: "Show the most recent marker scans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()
			if a.store == nil {
				return errNoHistory
			}

			scans, err := a.store.RecentScans(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, s := range scans {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s %s\n",
					s.ScannedAt.Local().Format("2006-01-02 15:04:05"), s.LocationID, dimStyle.Render(s.ID.String()))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", sqlstore.DefaultRecentScans, "number of scans to show")
	return cmd
}

func newServeCmd(cfgPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			opts := []server.Option{server.WithLogger(a.log)}
			if a.store != nil {
				opts = append(opts, server.WithScanLog(a.store))
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(a.dir, a.engine, opts...).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func newSeedCmd(cfgPath *string) *cobra.Command {
	var dataset string
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy a dataset into the sqlite directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if dataset == "" {
				dataset = cfg.Directory.Dataset
			}

			g, err := builder.Load(dataset)
			if err != nil {
				return err
			}
			store, err := openStore(cfg, log)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			if reset {
				if err := store.Reset(ctx); err != nil {
					return err
				}
			}
			if err := store.Import(ctx, g); err != nil {
				return err
			}
			n, err := store.LocationCount()
			if err != nil {
				return err
			}
			log.Info("seeded", zap.String("dataset", dataset), zap.String("db", cfg.Directory.DBPath))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %s into %s (%d locations)\n", dataset, cfg.Directory.DBPath, n)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataset, "dataset", "", "preset name or YAML building file (default from config)")
	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing data first")
	return cmd
}
