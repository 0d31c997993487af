package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studycalendar/config"
	_ "studycalendar/docs"
	"studycalendar/internal/adapters/blob"
	delivery "studycalendar/internal/delivery/http"
	"studycalendar/internal/delivery/http/middleware"
	"studycalendar/internal/repository/postgres"
	"studycalendar/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Study Calendar API
// @version 1.0
// @description Calendar and event management backend: events, file attachments, and threaded notes.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("database connection established")

	eventRepo := postgres.NewEventRepository(db)
	fileRepo := postgres.NewEventFileRepository(db)
	noteRepo := postgres.NewEventNoteRepository(db)
	store := blob.NewLocalStore(cfg.UploadDir)

	eventService := services.NewEventService(eventRepo, fileRepo, noteRepo, serviceTimeout)
	fileService := services.NewFileService(fileRepo, store, serviceTimeout)
	noteService := services.NewNoteService(noteRepo, serviceTimeout)

	eventController := delivery.NewEventController(logger, eventService)
	fileController := delivery.NewFileController(logger, fileService)
	noteController := delivery.NewNoteController(logger, noteService)

	mux := delivery.NewRouter(eventController, fileController, noteController, cfg.StaticDir)
	handler := middleware.LoggingMiddleware(logger, middleware.PermissiveCORS(mux))

	addr := cfg.Host + ":" + cfg.Port
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
