package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"mindease/backend/internal/config"
	"mindease/backend/internal/store"
	"mindease/backend/internal/wellness"
)

const adminRole = "admin"

type App struct {
	cfg       config.Config
	engine    *wellness.Engine
	sessions  *SessionRegistry
	logs      store.Store
	templates []wellness.ProblemTemplate
	logger    *zap.Logger
}

type AdminUser struct {
	Subject string
	Role    string
}

// Option customizes an App at construction.
type Option func(*App)

// WithEngine replaces the default engine, e.g. one with a fixed Picker.
func WithEngine(engine *wellness.Engine) Option {
	return func(a *App) {
		if engine != nil {
			a.engine = engine
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func New(cfg config.Config, logs store.Store, opts ...Option) (*App, error) {
	if logs == nil {
		return nil, fmt.Errorf("log store is nil")
	}
	templates, err := wellness.DefaultTemplates()
	if err != nil {
		return nil, err
	}
	app := &App{
		cfg:       cfg,
		engine:    wellness.NewEngine(nil),
		sessions:  NewSessionRegistry(cfg.MaxSessions),
		logs:      logs,
		templates: templates,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app, nil
}

func (a *App) Router() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(a.logger), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", a.health)

	api := router.Group(a.cfg.APIPrefix)
	api.POST("/chat/respond", a.chatRespond)
	api.POST("/mood", a.createMoodPlan)
	api.GET("/mood", a.getMoodHistory)
	api.GET("/templates", a.listTemplates)

	admin := api.Group("/admin")
	admin.Use(a.authMiddleware())
	admin.GET("/logs", a.adminLogs)

	return router
}

func (a *App) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "mindease-api",
	})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func (a *App) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			writeError(c, http.StatusUnauthorized, "Bearer token required")
			return
		}
		tokenString := strings.TrimSpace(authHeader[len("Bearer "):])
		if tokenString == "" {
			writeError(c, http.StatusUnauthorized, "Bearer token required")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if token.Method == nil || token.Method.Alg() != a.cfg.JWTAlgorithm {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(a.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			writeError(c, http.StatusUnauthorized, "Invalid bearer token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(c, http.StatusUnauthorized, "Invalid token payload")
			return
		}
		if a.cfg.JWTAudience != "" && !claimHasAudience(claims["aud"], a.cfg.JWTAudience) {
			writeError(c, http.StatusUnauthorized, "Invalid token audience")
			return
		}
		if a.cfg.JWTIssuer != "" {
			issuer, _ := claims["iss"].(string)
			if issuer != a.cfg.JWTIssuer {
				writeError(c, http.StatusUnauthorized, "Invalid token issuer")
				return
			}
		}
		sub, _ := claims["sub"].(string)
		sub = strings.TrimSpace(sub)
		if sub == "" {
			writeError(c, http.StatusUnauthorized, "Token subject missing")
			return
		}
		role, _ := claims["role"].(string)
		if !strings.EqualFold(strings.TrimSpace(role), adminRole) {
			writeError(c, http.StatusForbidden, "Admin role required")
			return
		}

		c.Set("adminUser", AdminUser{Subject: sub, Role: adminRole})
		c.Next()
	}
}

func claimHasAudience(value any, audience string) bool {
	switch v := value.(type) {
	case string:
		return v == audience
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == audience {
				return true
			}
		}
	case []string:
		for _, item := range v {
			if item == audience {
				return true
			}
		}
	}
	return false
}

func adminUserFromContext(c *gin.Context) (AdminUser, bool) {
	raw, ok := c.Get("adminUser")
	if !ok {
		return AdminUser{}, false
	}
	user, ok := raw.(AdminUser)
	return user, ok
}

func writeError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

func mustJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
