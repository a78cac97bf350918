package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"

	"github.com/gin-gonic/gin"
)

const broadcastQueueSize = 256

var _ interfaces.IDataExchanger = (*FastAPIServer)(nil)

// -----------------------------------------------------------------------------
// FastAPIServer
// -----------------------------------------------------------------------------

type FastAPIServer struct {
	Config    *models.MConfig
	Logger    *logger.Logger
	Processor interfaces.IQueryProcessor
	engine    *gin.Engine
	http      *http.Server

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan models.MUpdateMessage // Buffered queue
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once

	// Latest message per update type, replayed to new subscribers
	latest     map[string]models.MUpdateMessage
	stateMutex sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewFastAPIServer(cfg *models.MConfig, processor interfaces.IQueryProcessor, logger *logger.Logger) *FastAPIServer {
	// Set Gin mode
	if !strings.EqualFold(cfg.LogLevel, "DEBUG") {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &FastAPIServer{
		Config:     cfg,
		Logger:     logger,
		Processor:  processor,
		engine:     gin.New(),
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan models.MUpdateMessage, broadcastQueueSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		latest:     make(map[string]models.MUpdateMessage),
	}

	// Middlewares
	s.engine.Use(gin.Recovery(), requestLogger(logger), corsMiddleware())

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *FastAPIServer) setupRoutes() {
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/status", s.getStatus)

	// Queries accept every verb; the processor rejects anything but GET
	s.engine.Any("/api/:object", s.handleQuery)
	s.engine.Any("/api/:object/:id", s.handleQuery)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------

// Handler exposes the routes, mainly for tests
func (s *FastAPIServer) Handler() http.Handler {
	return s.engine
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *FastAPIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		close(s.done)
		if s.http != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err = s.http.Shutdown(ctx)
		}
	})
	return err
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *FastAPIServer) handleQuery(c *gin.Context) {
	data, err := s.Processor.Process(c.Request.Context(), c.Request.Method, c.Param("object"), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	// Cached JSON goes out verbatim
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	connections := len(s.clients)
	updates := len(s.latest)
	s.stateMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"connections": connections,
		"updates":     updates,
	})
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":           s.Config.Name,
		"market_open":    s.Processor.IsMarketOpen(),
		"cache_provider": s.Config.Cache.Provider,
		"time":           time.Now().UTC().Format(time.RFC3339),
	})
}
