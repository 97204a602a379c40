package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/wirelance/wirelance/internal/middleware"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	"github.com/wirelance/wirelance/internal/modules/service"
	"github.com/wirelance/wirelance/internal/notify"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	svc service.NotificationService
	hub *notify.Hub
	log *zap.Logger

	upgrader websocket.Upgrader
}

func NewNotificationHandler(s service.NotificationService, hub *notify.Hub, allowedOrigins []string, log *zap.Logger) *NotificationHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return &NotificationHandler{
		svc: s,
		hub: hub,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// ListNotifications godoc
//
//	@Summary		List unshown notifications
//	@Tags			notification
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Notification}
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	out, err := h.svc.ListUnshown(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// MarkShown godoc
//
//	@Summary		Mark notification shown
//	@Tags			notification
//	@Produce		json
//	@Param			notification_id	path	integer	true	"Notification ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/notifications/{notification_id}/shown [put]
func (h *NotificationHandler) MarkShown(c *gin.Context) {
	notificationID, err := strconv.ParseInt(c.Param("notification_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	err = h.svc.MarkShown(c.Request.Context(), notificationID, userID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("notification not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{})
	}
}

// Connect upgrades the request to a websocket and registers the
// connection in the hub. Live pushes (moderation outcomes, sprint
// workflow warnings) arrive on this connection.
func (h *NotificationHandler) Connect(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Sugar().Errorw("websocket upgrade failed", "userId", userID, "err", err)
		return
	}
	h.hub.Register(userID, conn)
}
