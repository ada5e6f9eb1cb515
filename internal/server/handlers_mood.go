package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindease/backend/internal/store"
	"mindease/backend/internal/wellness"
)

func (a *App) createMoodPlan(c *gin.Context) {
	var payload moodPlanRequest
	if err := c.ShouldBind(&payload); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	mood := strings.TrimSpace(payload.Mood)
	if mood == "" {
		writeError(c, http.StatusBadRequest, "mood is required")
		return
	}
	note := strings.TrimSpace(payload.Note)

	schedule := wellness.ScheduleFor(mood, note)
	entry, err := a.logs.AppendMood(c.Request.Context(), store.MoodLog{
		Mood: mood,
		Note: note,
		Plan: schedule.Text,
	})
	if err != nil {
		a.logger.Error("failed to append mood log", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        entry.ID,
		"mood":      mood,
		"note":      note,
		"plan":      schedule.Text,
		"plan_kind": string(schedule.Plan),
	})
}

func (a *App) getMoodHistory(c *gin.Context) {
	ctx := c.Request.Context()
	moods, err := a.logs.ListMoods(ctx, parseLimit(c.Query("limit")))
	if err != nil {
		a.logger.Error("failed to list mood logs", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to load mood history")
		return
	}

	latestPlan := ""
	latest, ok, err := a.logs.LatestMood(ctx)
	if err != nil {
		a.logger.Error("failed to load latest mood", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "Failed to load mood history")
		return
	}
	if ok {
		latestPlan = latest.Plan
	}

	c.JSON(http.StatusOK, gin.H{
		"latest_plan": latestPlan,
		"moods":       moods,
	})
}

func (a *App) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates": a.templates,
	})
}
