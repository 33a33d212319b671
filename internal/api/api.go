package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	admin_module "github.com/ethanbaker/funfacts/internal/api/modules/admin"
	auth_module "github.com/ethanbaker/funfacts/internal/api/modules/auth"
	facts_module "github.com/ethanbaker/funfacts/internal/api/modules/facts"
	health_module "github.com/ethanbaker/funfacts/internal/api/modules/health"

	"github.com/ethanbaker/funfacts/internal/stores/db"
	"github.com/ethanbaker/funfacts/internal/stores/fact"
	"github.com/ethanbaker/funfacts/internal/stores/seed"
	"github.com/ethanbaker/funfacts/internal/stores/setting"
	"github.com/ethanbaker/funfacts/pkg/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewEngine opens the store, runs seeding, and assembles the gin engine with
// all modules registered. Split from Start so tests can drive the engine
// through httptest.
func NewEngine(cfg *utils.Config) (*gin.Engine, error) {
	// Open the store and migrate tables
	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	facts, err := fact.NewStore(conn)
	if err != nil {
		return nil, err
	}

	settings, err := setting.NewStore(conn)
	if err != nil {
		return nil, err
	}

	// Seed default content before any request is served
	if err := seed.Run(context.Background(), facts, settings); err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	// Add app level settings/routes
	engine := gin.Default()

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Embedded page templates
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)

	// Signed cookie sessions carry the admin flag and flash messages. The
	// default secret is a deployment hazard; set SESSION_SECRET in production.
	secret := cfg.GetWithDefault("SESSION_SECRET", "dev-secret-change-me")
	engine.Use(sessions.Sessions("funfacts_session", cookie.NewStore([]byte(secret))))

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Public index page
	engine.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)
	facts_module.RegisterRoutes(baseGroup, facts)

	auth_module.RegisterRoutes(engine, settings)
	admin_module.RegisterRoutes(engine, facts, settings)

	return engine, nil
}

// Start assembles the engine and serves it on the configured port
func Start(cfg *utils.Config) {
	port := cfg.GetWithDefault("API_PORT", "8080")

	engine, err := NewEngine(cfg)
	if err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize server: ", err)
	}

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
