package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/wirelance/wirelance/docs"
	"github.com/wirelance/wirelance/internal/config"
	"github.com/wirelance/wirelance/internal/middleware"
	"github.com/wirelance/wirelance/internal/modules/handler"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config              *config.Config
	Log                 *zap.Logger
	ProjectHandler      *handler.ProjectHandler
	CatalogHandler      *handler.CatalogHandler
	ModerationHandler   *handler.ModerationHandler
	VacancyHandler      *handler.VacancyHandler
	ResponseHandler     *handler.ResponseHandler
	ResumeHandler       *handler.ResumeHandler
	TeamHandler         *handler.TeamHandler
	TaskHandler         *handler.TaskHandler
	SprintHandler       *handler.SprintHandler
	PMSettingsHandler   *handler.PMSettingsHandler
	WikiHandler         *handler.WikiHandler
	DocumentHandler     *handler.DocumentHandler
	TicketHandler       *handler.TicketHandler
	NotificationHandler *handler.NotificationHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.CORS(d.Config.Auth.AllowedOrigins))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// The catalog is the public storefront, no token needed.
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/projects", d.CatalogHandler.ListCatalog)
			catalog.GET("/projects/search", d.CatalogHandler.SearchCatalog)
			catalog.GET("/projects/pagination/:page", d.CatalogHandler.CatalogPage)
		}

		auth := v1.Group("")
		auth.Use(middleware.UserAuth(d.Config))

		project := auth.Group("/projects")
		{
			project.GET("/stages", d.ProjectHandler.ListStages)

			project.POST("", d.ProjectHandler.CreateProject)
			project.GET("/:project_id", d.ProjectHandler.GetProject)
			project.PUT("/:project_id", d.ProjectHandler.UpdateProject)
			project.DELETE("/:project_id", d.ProjectHandler.DeleteProject)

			project.PUT("/:project_id/visibility", d.ProjectHandler.SetVisibility)
			project.POST("/:project_id/archive", d.ProjectHandler.ArchiveProject)
			project.POST("/:project_id/unarchive", d.ProjectHandler.UnarchiveProject)

			project.POST("/:project_id/vacancies", d.VacancyHandler.AttachVacancy)
			project.GET("/:project_id/vacancies", d.VacancyHandler.ListProjectVacancies)
			project.GET("/:project_id/vacancies/available", d.VacancyHandler.ListAttachable)
			project.DELETE("/:project_id/vacancies/:vacancy_id", d.VacancyHandler.DetachVacancy)

			project.POST("/:project_id/responses", d.ResponseHandler.WriteResponse)
			project.GET("/:project_id/responses", d.ResponseHandler.ListResponses)

			project.GET("/:project_id/team", d.TeamHandler.GetTeam)
			project.POST("/:project_id/team/members", d.TeamHandler.InviteMember)
			project.DELETE("/:project_id/team/members/:user_id", d.TeamHandler.RemoveMember)

			task := project.Group("/:project_id/tasks")
			{
				task.POST("", d.TaskHandler.CreateTask)
				task.GET("", d.TaskHandler.ListTasks)
				task.GET("/:task_number", d.TaskHandler.GetTask)
				task.PUT("/:task_number/status", d.TaskHandler.UpdateTaskStatus)
				task.PUT("/:task_number/executor", d.TaskHandler.UpdateTaskExecutor)
				task.PUT("/:task_number/watchers", d.TaskHandler.UpdateTaskWatchers)
				task.PUT("/:task_number/tags", d.TaskHandler.UpdateTaskTags)

				task.GET("/:task_number/links", d.TaskHandler.ListTaskLinks)
				task.GET("/:task_number/blocking", d.TaskHandler.ListBlockingLinks)
			}
			project.POST("/:project_id/task-links", d.TaskHandler.CreateTaskLink)
			project.DELETE("/:project_id/task-links", d.TaskHandler.RemoveTaskLink)

			sprint := project.Group("/:project_id/sprints")
			{
				sprint.GET("", d.SprintHandler.ListSprints)
				sprint.GET("/:sprint_id", d.SprintHandler.GetSprint)
				sprint.POST("/:sprint_id/start", d.SprintHandler.StartSprint)
				sprint.PUT("/:sprint_id/name", d.SprintHandler.UpdateSprintName)
				sprint.PUT("/:sprint_id/details", d.SprintHandler.UpdateSprintDetails)
				sprint.PUT("/:sprint_id/executor", d.SprintHandler.UpsertSprintExecutor)
				sprint.PUT("/:sprint_id/watchers", d.SprintHandler.UpsertSprintWatchers)
			}

			wiki := project.Group("/:project_id/wiki")
			{
				wiki.GET("", d.WikiHandler.GetWikiTree)
				wiki.POST("/folders", d.WikiHandler.CreateWikiFolder)
				wiki.POST("/pages", d.WikiHandler.CreateWikiPage)
			}

			project.POST("/:project_id/documents", d.DocumentHandler.UploadDocument)
			project.GET("/:project_id/documents", d.DocumentHandler.ListDocuments)
		}

		moderation := auth.Group("/moderation")
		{
			moderation.GET("/projects", d.ModerationHandler.ListPending)
			moderation.POST("/projects/:project_id/approve", d.ModerationHandler.ApproveProject)
			moderation.POST("/projects/:project_id/reject", d.ModerationHandler.RejectProject)
		}

		resume := auth.Group("/resumes")
		{
			resume.GET("", d.ResumeHandler.ListResumes)
			resume.GET("/search", d.ResumeHandler.SearchResumes)
			resume.GET("/pagination/:page", d.ResumeHandler.ResumesPage)
			resume.GET("/:resume_id", d.ResumeHandler.GetResume)
		}

		pm := auth.Group("/project-managment-settings")
		{
			pm.POST("/user-tag", d.PMSettingsHandler.CreateUserTag)
			pm.GET("/user-tags", d.PMSettingsHandler.ListTags)
			pm.POST("/user-task-status", d.PMSettingsHandler.CreateUserStatus)
			pm.GET("/select-create-task-statuses", d.PMSettingsHandler.ListSelectableStatuses)
			pm.GET("/scrum", d.PMSettingsHandler.GetScrumSettings)
			pm.PUT("/sprint-duration", d.PMSettingsHandler.UpdateSprintDuration)
			pm.PUT("/move-not-completed-tasks", d.PMSettingsHandler.UpdateMoveNotCompletedTasks)
			pm.PUT("/view-strategy", d.PMSettingsHandler.UpdateViewStrategy)
		}

		wikiPages := auth.Group("/wiki/pages")
		{
			wikiPages.GET("/:page_id", d.WikiHandler.GetWikiPage)
			wikiPages.PUT("/:page_id", d.WikiHandler.UpdateWikiPage)
			wikiPages.DELETE("/:page_id", d.WikiHandler.DeleteWikiPage)
		}

		document := auth.Group("/documents")
		{
			document.GET("/:document_id/download", d.DocumentHandler.DownloadDocument)
			document.DELETE("/:document_id", d.DocumentHandler.DeleteDocument)
		}

		ticket := auth.Group("/tickets")
		{
			ticket.POST("", d.TicketHandler.CreateTicket)
			ticket.GET("", d.TicketHandler.ListTickets)
			ticket.GET("/:ticket_id", d.TicketHandler.GetTicket)
			ticket.POST("/:ticket_id/messages", d.TicketHandler.AddTicketMessage)
			ticket.POST("/:ticket_id/close", d.TicketHandler.CloseTicket)
		}

		notification := auth.Group("/notifications")
		{
			notification.GET("", d.NotificationHandler.ListNotifications)
			notification.PUT("/:notification_id/shown", d.NotificationHandler.MarkShown)
		}

		auth.GET("/notify", d.NotificationHandler.Connect)
	}
	return r
}
