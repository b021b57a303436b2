package controller

import (
	"net/http"

	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/Harry9429/Distro-app/internal/notify"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type NotificationController struct {
	hub            *notify.Hub
	allowedOrigins map[string]bool
}

func NewNotificationController(hub *notify.Hub, origins []string) *NotificationController {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return &NotificationController{
		hub:            hub,
		allowedOrigins: allowed,
	}
}

func (ctrl *NotificationController) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return ctrl.allowedOrigins[r.Header.Get("Origin")]
		},
	}
}

// Stream upgrades to a websocket and feeds the caller console events
// GET /api/v1/notifications/ws
func (ctrl *NotificationController) Stream(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	up := ctrl.upgrader()
	conn, err := up.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade to WebSocket", err, nil)
		return
	}

	client := &notify.Client{
		Hub:    ctrl.hub,
		Conn:   &notify.Conn{Conn: conn},
		UserID: userID,
		Role:   string(role),
		Send:   make(chan []byte, 256),
	}

	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	log.Info("WebSocket connection established", map[string]interface{}{
		"user_id": userID,
	})
}
