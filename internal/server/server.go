// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"

	"meal-planner/internal/planner"
	"meal-planner/internal/storage"
)

type Config struct {
	Host        string
	Port        int
	CatalogPath string // JSON or YAML catalog file
	DBPath      string // SQLite catalog store, optional
}

var serverInfo = protocol.Implementation{
	Name:    "meal-planner",
	Version: "1.0.0",
}

type toolHandler func(*protocol.CallToolRequest) (*protocol.CallToolResult, error)

// MealPlannerServer exposes one planning session over HTTP. The session lives
// as long as the process; nothing about it is persisted.
type MealPlannerServer struct {
	engine     *gin.Engine
	httpServer *http.Server
	storage    *storage.SQLiteStorage
	session    *planner.Session
	plans      *planRegistry
	tools      map[string]toolHandler
	config     *Config
}

func NewMealPlannerServer(cfg *Config) (*MealPlannerServer, error) {
	mealServer := &MealPlannerServer{
		plans:  newPlanRegistry(maxPendingPlans),
		config: cfg,
	}

	cat, err := mealServer.loadCatalog()
	if err != nil {
		if mealServer.storage != nil {
			mealServer.storage.Close()
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	mealServer.session = planner.NewSession(planner.NewStore(), cat)

	mealServer.registerTools()

	engine := gin.New()
	engine.Use(gin.Recovery(), corsHeaders())
	engine.GET("/health", mealServer.handleHealth)
	engine.GET("/catalog", mealServer.handleCatalog)
	engine.POST("/", mealServer.handleToolCall)
	engine.OPTIONS("/", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	mealServer.engine = engine

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mealServer.httpServer = &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	return mealServer, nil
}

func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Next()
	}
}

func (s *MealPlannerServer) Handler() http.Handler {
	return s.engine
}

func (s *MealPlannerServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"server": serverInfo,
	})
}

func (s *MealPlannerServer) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Catalog())
}

func (s *MealPlannerServer) handleToolCall(c *gin.Context) {
	var request protocol.CallToolRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	handler, ok := s.tools[request.Name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Unknown tool: %s", request.Name)})
		return
	}

	result, err := handler(&request)
	if err != nil {
		log.Printf("Tool %s failed: %v", request.Name, err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

const shutdownTimeout = 5 * time.Second

// Start serves until ctx is cancelled or the listener fails.
func (s *MealPlannerServer) Start(ctx context.Context) error {
	log.Printf("Starting meal planner server on %s", s.httpServer.Addr)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *MealPlannerServer) Stop() error {
	if s.storage != nil {
		s.storage.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *MealPlannerServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
