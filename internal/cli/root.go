// Package cli is the presentation layer: it constructs the store, runs one
// core operation to completion and renders the snapshot it returns.
package cli

import (
	"github.com/spf13/cobra"

	"vento/internal/config"
	"vento/internal/dateutil"
	"vento/internal/repository"
	"vento/internal/service"
)

// options carries the persistent flags shared by every command.
type options struct {
	dbPath string
	demo   bool
}

// New builds the vento command tree.
func New() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "vento",
		Short:        "Track dated events in color-coded categories.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "path to the sqlite database (default ~/.vento/events.db)")
	root.PersistentFlags().BoolVar(&opts.demo, "demo", false, "run against an in-memory store seeded with sample data")

	addList(root, opts)
	addDashboard(root, opts)
	addAdd(root, opts)
	addEdit(root, opts)
	addStatusCommands(root, opts)
	addPostpone(root, opts)
	addDelete(root, opts)
	addWatch(root, opts)

	return root
}

// open wires the services against the configured backend. The returned
// closer releases the database handle when one was opened.
func (o *options) open() (*service.EventService, *service.CategoryService, func(), error) {
	cfg, err := config.Load(o.dbPath, o.demo)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.Demo {
		store := repository.NewDemoStore(dateutil.Today())
		return service.NewEventService(store.Events(), store.Categories()),
			service.NewCategoryService(store.Categories(), store.Events()),
			func() {}, nil
	}

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, nil, err
	}
	closer := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	events := repository.NewSQLEventRepository(db)
	categories := repository.NewSQLCategoryRepository(db)
	return service.NewEventService(events, categories),
		service.NewCategoryService(categories, events),
		closer, nil
}
