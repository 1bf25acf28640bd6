package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/NigthMare10/jlv-disenos/internal/config"
	"github.com/NigthMare10/jlv-disenos/internal/database"
	"github.com/NigthMare10/jlv-disenos/internal/repository"
	"github.com/NigthMare10/jlv-disenos/internal/routes"
	"github.com/NigthMare10/jlv-disenos/internal/storage"
	"github.com/NigthMare10/jlv-disenos/internal/store"
)

func initLogger() {
	var zapConfig zap.Config
	if gin.Mode() == gin.ReleaseMode {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatal("could not build logger:", err)
	}
	zap.ReplaceGlobals(logger)
}

func main() {
	cfg := config.LoadConfig()
	initLogger()
	defer zap.L().Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sin MONGO_URI la tienda corre contra el catálogo semilla local.
	var repo *repository.ProductRepository
	if cfg.MongoURI != "" {
		client, err := database.Connect(cfg.MongoURI)
		if err != nil {
			zap.S().Warnw("⚠️ MongoDB unreachable, using built-in catalog", "error", err)
		} else {
			repo = repository.NewProductRepository(client.Database(cfg.MongoDB).Collection("products"))
			defer client.Disconnect(context.Background())
		}
	}

	catalog := store.NewCatalogStore(repo)

	carts, err := storage.NewFileStore(cfg.CartDataDir)
	if err != nil {
		zap.S().Fatalw("could not open cart storage", "error", err)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionKey))

	router := gin.Default()
	routes.RegisterRoutes(router, catalog, carts, sessionStore, cfg)

	// El hook de invalidación de caché ya quedó registrado en las rutas;
	// recién ahora puede arrancar el consumidor del catálogo.
	go catalog.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zap.S().Infof("🚀 Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server error", "error", err)
		}
	}()

	<-ctx.Done()
	zap.S().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().Warnw("forced shutdown", "error", err)
	}
}
