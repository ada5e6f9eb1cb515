package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindease/backend/internal/store"
	"mindease/backend/internal/wellness"
)

const replyKindPrompt = "prompt"

func (a *App) chatRespond(c *gin.Context) {
	var payload chatRespondRequest
	if !mustJSON(c, &payload) {
		return
	}

	message := strings.TrimSpace(payload.Message)
	sessionID := normalizeSessionID(payload.SessionID)
	if message == "" {
		c.JSON(http.StatusOK, gin.H{
			"response":   wellness.PromptForInput,
			"kind":       replyKindPrompt,
			"topics":     []string{},
			"sections":   []string{},
			"session_id": sessionID,
		})
		return
	}

	mode := normalizeRequestMode(payload.Mode)
	reply := a.engine.Respond(a.sessions.Memory(sessionID), message, mode)
	if reply.Kind == wellness.ReplyCrisis {
		a.logger.Warn("crisis language detected", zap.String("session_id", sessionID), zap.String("mode", mode))
	}

	topics := topicNames(reply.Topics)
	if _, err := a.logs.AppendChat(c.Request.Context(), store.ChatLog{
		SessionID:   sessionID,
		UserMessage: message,
		Response:    reply.Text,
		Mode:        mode,
		Kind:        string(reply.Kind),
		Topics:      topics,
	}); err != nil {
		a.logger.Error("failed to append chat log", zap.String("session_id", sessionID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"response":   reply.Text,
		"kind":       string(reply.Kind),
		"topics":     topics,
		"sections":   sectionNames(reply.Sections),
		"session_id": sessionID,
	})
}
