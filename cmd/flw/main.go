package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/aeste7/flw/pkg/app/config"
	"github.com/aeste7/flw/pkg/domain/model"
	"github.com/aeste7/flw/pkg/domain/service"
	"github.com/aeste7/flw/pkg/infrastructure/inmemory"
	"github.com/aeste7/flw/pkg/infrastructure/mysql"
	"github.com/aeste7/flw/pkg/transport"
)

func main() {
	app := &cli.App{
		Name:           "flw",
		Usage:          "flower shop management backend",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: runMigrations,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("flw exited with error")
	}
}

type repositories struct {
	flowers   model.FlowerRepository
	writeoffs model.WriteoffRepository
	orders    model.OrderRepository
	bouquets  model.BouquetRepository
	notes     model.NoteRepository
	tx        model.TxManager
}

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel)

	repos, err := buildRepositories(cfg)
	if err != nil {
		return err
	}

	warehouse := service.NewWarehouseService(repos.flowers)
	handler := transport.NewHandler(
		warehouse,
		service.NewWriteoffService(repos.writeoffs, warehouse, repos.tx),
		service.NewOrderService(repos.orders, warehouse, repos.tx),
		service.NewBouquetService(repos.bouquets, warehouse, repos.tx),
		service.NewNoteService(repos.notes),
	)

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: transport.Router(handler)}
	go func() {
		log.WithField("address", cfg.HTTPAddress).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	waitForKillSignal(getKillSignalChan())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func runMigrations(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel)

	db, err := mysql.NewConnection(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := mysql.Migrate(db); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

func buildRepositories(cfg *config.Config) (*repositories, error) {
	if cfg.InMemory {
		log.Warn("using in-memory storage, state is lost on exit")
		store := inmemory.NewStore()
		return &repositories{
			flowers:   store.Flowers(),
			writeoffs: store.Writeoffs(),
			orders:    store.Orders(),
			bouquets:  store.Bouquets(),
			notes:     store.Notes(),
			tx:        store,
		}, nil
	}

	db, err := mysql.NewConnection(cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err := mysql.Migrate(db); err != nil {
		return nil, err
	}
	return &repositories{
		flowers:   mysql.NewFlowerRepository(db),
		writeoffs: mysql.NewWriteoffRepository(db),
		orders:    mysql.NewOrderRepository(db),
		bouquets:  mysql.NewBouquetRepository(db),
		notes:     mysql.NewNoteRepository(db),
		tx:        mysql.NewTxManager(db),
	}, nil
}

func setupLogger(level string) {
	log.SetFormatter(&log.JSONFormatter{})
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func waitForKillSignal(killSignalChan <-chan os.Signal) {
	killSignal := <-killSignalChan
	switch killSignal {
	case os.Interrupt:
		log.Info("Got SIGINT...")
	case syscall.SIGTERM:
		log.Info("Got SIGTERM...")
	}
}
