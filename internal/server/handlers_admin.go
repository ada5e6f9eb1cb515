package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *App) adminLogs(c *gin.Context) {
	user, ok := adminUserFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := c.Request.Context()
	limit := parseLimit(c.Query("limit"))
	chats, err := a.logs.ListChats(ctx, limit)
	if err != nil {
		a.logger.Error("failed to list chat logs", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to load chat logs")
		return
	}
	moods, err := a.logs.ListMoods(ctx, limit)
	if err != nil {
		a.logger.Error("failed to list mood logs", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to load mood logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chats":           chats,
		"moods":           moods,
		"active_sessions": a.sessions.Len(),
		"requested_by":    user.Subject,
	})
}
