package bootstrap

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/wirelance/wirelance/internal/config"
	"github.com/wirelance/wirelance/internal/infra/blob"
	"github.com/wirelance/wirelance/internal/infra/cache"
	"github.com/wirelance/wirelance/internal/infra/db"
	"github.com/wirelance/wirelance/internal/infra/httpclient"
	"github.com/wirelance/wirelance/internal/infra/logger"
	"github.com/wirelance/wirelance/internal/infra/queue"
	"github.com/wirelance/wirelance/internal/modules/handler"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/service"
	"github.com/wirelance/wirelance/internal/notify"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	PublisherModeration = "publisher.moderation"
	PublisherSprint     = "publisher.sprint"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.ProjectStage{},
				&model.UserProject{},
				&model.UserProjectStage{},
				&model.CatalogProject{},
				&model.ProjectStatus{},
				&model.ArchivedProject{},
				&model.ModerationProject{},
				&model.ModerationComment{},
				&model.UserVacancy{},
				&model.ProjectVacancy{},
				&model.ProjectResponse{},
				&model.ProjectComment{},
				&model.Dialog{},
				&model.DialogMember{},
				&model.DialogMessage{},
				&model.ProjectTeam{},
				&model.ProjectTeamMember{},
				&model.TeamMemberRole{},
				&model.Resume{},
				&model.Notification{},
				&model.CompanyProject{},
				&model.CompanyWorkspace{},
				&model.ProjectTask{},
				&model.TaskLink{},
				&model.Sprint{},
				&model.SprintTask{},
				&model.StatusTemplate{},
				&model.ProjectTemplate{},
				&model.TaskStatus{},
				&model.UserTaskTag{},
				&model.MoveNotCompletedTasksSetting{},
				&model.SprintDurationSetting{},
				&model.UserViewStrategy{},
				&model.ProjectSetting{},
				&model.WikiTree{},
				&model.WikiFolder{},
				&model.WikiFolderRelation{},
				&model.WikiPage{},
				&model.ProjectDocument{},
				&model.Ticket{},
				&model.TicketMessage{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ connection and per-exchange publishers
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.ProvideNamed(inj, PublisherModeration, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.ExchangeName.Moderation,
			do.MustInvoke[*zap.Logger](i),
		)
	})
	do.ProvideNamed(inj, PublisherSprint, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.ExchangeName.Sprint,
			do.MustInvoke[*zap.Logger](i),
		)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return 15 * time.Minute
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	// ops webhook + websocket hub
	do.Provide(inj, func(i *do.Injector) (*httpclient.OpsClient, error) {
		return httpclient.NewOpsClient(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*notify.Hub, error) {
		return notify.NewHub(do.MustInvoke[*zap.Logger](i)), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CatalogRepo, error) {
		return repo.NewCatalogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ModerationRepo, error) {
		return repo.NewModerationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.VacancyRepo, error) {
		return repo.NewVacancyRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ResponseRepo, error) {
		return repo.NewResponseRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ResumeRepo, error) {
		return repo.NewResumeRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TeamRepo, error) {
		return repo.NewTeamRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.LinkRepo, error) {
		return repo.NewLinkRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SprintRepo, error) {
		return repo.NewSprintRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TemplateRepo, error) {
		return repo.NewTemplateRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SettingsRepo, error) {
		return repo.NewSettingsRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.WikiRepo, error) {
		return repo.NewWikiRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.DocumentRepo, error) {
		return repo.NewDocumentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TicketRepo, error) {
		return repo.NewTicketRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.NotificationRepo, error) {
		return repo.NewNotificationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.NotificationRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*notify.Hub](i),
			do.MustInvoke[*httpclient.OpsClient](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewCatalogService(
			do.MustInvoke[repo.CatalogRepo](i),
			do.MustInvoke[*redis.Client](i),
			time.Duration(cfg.Redis.CatalogTTLSec)*time.Second,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ModerationService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewModerationService(
			do.MustInvoke[repo.ModerationRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.NotificationRepo](i),
			do.MustInvokeNamed[*queue.Publisher](i, PublisherModeration),
			do.MustInvoke[*notify.Hub](i),
			do.MustInvoke[*redis.Client](i),
			cfg.RabbitMQ,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.VacancyService, error) {
		return service.NewVacancyService(do.MustInvoke[repo.VacancyRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ResponseService, error) {
		return service.NewResponseService(
			do.MustInvoke[repo.ResponseRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.NotificationRepo](i),
			do.MustInvoke[*notify.Hub](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ResumeService, error) {
		return service.NewResumeService(do.MustInvoke[repo.ResumeRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TeamService, error) {
		return service.NewTeamService(
			do.MustInvoke[repo.TeamRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.NotificationRepo](i),
			do.MustInvoke[*notify.Hub](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.LinkRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SprintService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewSprintService(
			do.MustInvoke[repo.SprintRepo](i),
			do.MustInvokeNamed[*queue.Publisher](i, PublisherSprint),
			do.MustInvoke[*notify.Hub](i),
			do.MustInvoke[*httpclient.OpsClient](i),
			cfg.RabbitMQ,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PMSettingsService, error) {
		return service.NewPMSettingsService(
			do.MustInvoke[repo.TemplateRepo](i),
			do.MustInvoke[repo.SettingsRepo](i),
			do.MustInvoke[*httpclient.OpsClient](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.WikiService, error) {
		return service.NewWikiService(
			do.MustInvoke[repo.WikiRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DocumentService, error) {
		return service.NewDocumentService(
			do.MustInvoke[repo.DocumentRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[func() time.Duration](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TicketService, error) {
		return service.NewTicketService(
			do.MustInvoke[repo.TicketRepo](i),
			do.MustInvoke[*httpclient.OpsClient](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.NotificationService, error) {
		return service.NewNotificationService(do.MustInvoke[repo.NotificationRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CatalogHandler, error) {
		return handler.NewCatalogHandler(do.MustInvoke[service.CatalogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ModerationHandler, error) {
		return handler.NewModerationHandler(do.MustInvoke[service.ModerationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.VacancyHandler, error) {
		return handler.NewVacancyHandler(do.MustInvoke[service.VacancyService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ResponseHandler, error) {
		return handler.NewResponseHandler(do.MustInvoke[service.ResponseService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ResumeHandler, error) {
		return handler.NewResumeHandler(do.MustInvoke[service.ResumeService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TeamHandler, error) {
		return handler.NewTeamHandler(do.MustInvoke[service.TeamService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SprintHandler, error) {
		return handler.NewSprintHandler(do.MustInvoke[service.SprintService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PMSettingsHandler, error) {
		return handler.NewPMSettingsHandler(do.MustInvoke[service.PMSettingsService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.WikiHandler, error) {
		return handler.NewWikiHandler(do.MustInvoke[service.WikiService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DocumentHandler, error) {
		return handler.NewDocumentHandler(do.MustInvoke[service.DocumentService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TicketHandler, error) {
		return handler.NewTicketHandler(do.MustInvoke[service.TicketService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.NotificationHandler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return handler.NewNotificationHandler(
			do.MustInvoke[service.NotificationService](i),
			do.MustInvoke[*notify.Hub](i),
			cfg.Auth.AllowedOrigins,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	return inj
}
