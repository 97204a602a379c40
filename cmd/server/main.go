package main

//	@title			Wirelance API
//	@version		1.0
//	@description	Project marketplace and project management API.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				User Bearer token (JWT)

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/wirelance/wirelance/internal/bootstrap"
	"github.com/wirelance/wirelance/internal/config"
	"github.com/wirelance/wirelance/internal/infra/cache"
	dbpkg "github.com/wirelance/wirelance/internal/infra/db"
	"github.com/wirelance/wirelance/internal/modules/handler"
	"github.com/wirelance/wirelance/internal/router"
	"github.com/wirelance/wirelance/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	// Setup OpenTelemetry tracing (using configuration system)
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		}
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:              cfg,
		Log:                 log,
		ProjectHandler:      do.MustInvoke[*handler.ProjectHandler](inj),
		CatalogHandler:      do.MustInvoke[*handler.CatalogHandler](inj),
		ModerationHandler:   do.MustInvoke[*handler.ModerationHandler](inj),
		VacancyHandler:      do.MustInvoke[*handler.VacancyHandler](inj),
		ResponseHandler:     do.MustInvoke[*handler.ResponseHandler](inj),
		ResumeHandler:       do.MustInvoke[*handler.ResumeHandler](inj),
		TeamHandler:         do.MustInvoke[*handler.TeamHandler](inj),
		TaskHandler:         do.MustInvoke[*handler.TaskHandler](inj),
		SprintHandler:       do.MustInvoke[*handler.SprintHandler](inj),
		PMSettingsHandler:   do.MustInvoke[*handler.PMSettingsHandler](inj),
		WikiHandler:         do.MustInvoke[*handler.WikiHandler](inj),
		DocumentHandler:     do.MustInvoke[*handler.DocumentHandler](inj),
		TicketHandler:       do.MustInvoke[*handler.TicketHandler](inj),
		NotificationHandler: do.MustInvoke[*handler.NotificationHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
