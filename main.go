package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"shutter-monitor/internal/api"
	"shutter-monitor/internal/config"
	"shutter-monitor/internal/db"
	"shutter-monitor/internal/debounce"
	"shutter-monitor/internal/detector"
	"shutter-monitor/internal/frames"
	"shutter-monitor/internal/kafka"
	"shutter-monitor/internal/mqtt"
	"shutter-monitor/internal/persist"
	"shutter-monitor/internal/session"
	"shutter-monitor/internal/sqlitedb"
	"shutter-monitor/internal/worker"
)

func main() {
	configPath := flag.String("config", os.Getenv("SHUTTER_CONFIG"), "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("Service failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.LogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionID := uuid.NewString()
	slog.InfoContext(ctx, "Starting service...", "session_id", sessionID, "camera_id", cfg.Camera.ID)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	publishers, closePublishers, err := openPublishers(ctx, cfg, sessionID)
	if err != nil {
		return err
	}
	defer closePublishers()

	persister := persist.New(persist.Config{
		Store:      store,
		Timeout:    cfg.Persist.Timeout,
		Publishers: publishers,
	})

	source, err := frames.NewDirSource(frames.DirSourceConfig{
		Dir:     cfg.Source.Dir,
		Pattern: cfg.Source.Pattern,
		Loops:   cfg.Source.Loops,
		FPS:     cfg.Source.FPS,
	})
	if err != nil {
		return err
	}
	defer source.Close()

	det, closeDetector, err := openDetector(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDetector()

	var sink frames.Sink = &frames.NullSink{}
	var stream http.Handler
	if cfg.HTTP.Stream {
		mj := frames.NewMJPEGSink()
		sink, stream = mj, mj.Stream
	}
	defer sink.Close()

	cutoff, _ := cfg.Cutoff()
	loc, _ := cfg.Location()

	if cfg.HTTP.Addr != "" {
		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           api.New(api.Config{DB: persister, Stream: stream, Location: loc}).Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.ErrorContext(ctx, "HTTP server error", "error", err)
				cancel()
			}
		}()
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			srv.Shutdown(shutdownCtx)
		}()
	}

	sess := session.New(session.Config{
		CameraID:    cfg.Camera.ID,
		OpenClassID: cfg.Camera.OpenClassID,
		Cutoff:      cutoff,
		Location:    loc,
		SessionID:   sessionID,
	}, session.Deps{
		Source:   source,
		Detector: det,
		Machine:  debounce.New(cfg.Debounce.Threshold),
		Recorder: persister,
		Sink:     sink,
	})

	err = worker.New(worker.Config{
		Name:      "session-" + cfg.Camera.ID,
		Processor: sess,
	}).Run(ctx)

	stats := sess.Stats()
	slog.InfoContext(ctx, "Session finished",
		"session_id", sessionID,
		"frames", stats.Frames,
		"readings", stats.Readings,
		"events", stats.Events,
	)
	if err != nil && !errors.Is(err, worker.ErrStop) {
		return err
	}
	return nil
}

func openStore(ctx context.Context, cfg config.Config) (persist.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pg, err := db.Init(ctx, db.Config{
			ConnString:     cfg.Storage.Postgres.DSN,
			MigrationsPath: cfg.Storage.Postgres.Migrations,
		})
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case config.DriverSQLite:
		lite, err := sqlitedb.Open(ctx, sqlitedb.Config{Path: cfg.Storage.SQLite.Path})
		if err != nil {
			return nil, nil, err
		}
		return lite, lite.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func openPublishers(ctx context.Context, cfg config.Config, sessionID string) ([]persist.Publisher, func(), error) {
	var publishers []persist.Publisher
	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				slog.Error("Error closing publisher", "error", err)
			}
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		kp := kafka.New(kafka.Config{
			Brokers:   cfg.Kafka.Brokers,
			Topic:     cfg.Kafka.Topic,
			SessionID: sessionID,
		})
		publishers = append(publishers, kp)
		closers = append(closers, kp.Close)
	}
	if cfg.MQTT.Broker != "" {
		mp, err := mqtt.Connect(ctx, mqtt.Config{
			Broker:      cfg.MQTT.Broker,
			TopicPrefix: cfg.MQTT.TopicPrefix,
			ClientID:    cfg.MQTT.ClientID,
			SessionID:   sessionID,
		})
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		publishers = append(publishers, mp)
		closers = append(closers, mp.Close)
	}
	return publishers, closeAll, nil
}

func openDetector(ctx context.Context, cfg config.Config) (detector.Detector, func(), error) {
	if cfg.Detector.Command == "" {
		slog.WarnContext(ctx, "No detector command configured, every frame reads as empty")
		return &detector.Static{}, func() {}, nil
	}
	p, err := detector.StartProcess(ctx, detector.ProcessConfig{
		Command:   cfg.Detector.Command,
		Args:      cfg.Detector.Args,
		Threshold: cfg.Detector.Threshold,
	})
	if err != nil {
		return nil, nil, err
	}
	return p, func() {
		if err := p.Close(); err != nil {
			slog.Error("Error closing detector", "error", err)
		}
	}, nil
}
