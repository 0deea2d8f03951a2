// Package api exposes the ingestion pipeline and the stored ledger over
// HTTP. The API is the boundary the mobile bridge app submits captured
// messages through.
package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/paisatrail/paisa-trail/internal/common"
	"github.com/paisatrail/paisa-trail/internal/engine"
	"github.com/paisatrail/paisa-trail/internal/model"
	"github.com/paisatrail/paisa-trail/internal/parser"
	"github.com/paisatrail/paisa-trail/internal/service"
)

// MessageRequest mirrors the capture shape of the bridge app: the raw body,
// the sender short-code, and an optional ISO-8601 receipt timestamp. A
// missing timestamp defaults to the time of submission.
type MessageRequest struct {
	Body       string `json:"body"`
	Sender     string `json:"sender"`
	ReceivedAt string `json:"receivedAt"`
}

type parseResponse struct {
	Transaction *model.ParsedTransaction `json:"transaction,omitempty"`
	Match       bool                     `json:"match"`
	Stored      bool                     `json:"stored"`
}

// Server is the HTTP front end.
type Server struct {
	app    *fiber.App
	engine *engine.Engine
	store  service.TransactionStore
}

// NewServer builds the Fiber app and registers all routes.
func NewServer(eng *engine.Engine, store service.TransactionStore) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "paisa-trail",
		DisableStartupMessage: true,
	})

	s := &Server{app: app, engine: eng, store: store}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Request-Id", uuid.NewString())
		return c.Next()
	})

	api := s.app.Group("/api")
	api.Get("/health", s.handleHealth)

	v1 := api.Group("/v1")
	v1.Post("/messages", s.handleMessage)
	v1.Post("/messages/batch", s.handleBatch)
	v1.Get("/transactions", s.handleListTransactions)
	v1.Get("/categories", s.handleCategories)
}

// Listen serves the API on the given address, blocking until shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleMessage(c *fiber.Ctx) error {
	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}

	msg, err := req.toMessage()
	if err != nil {
		return badRequest(c, err.Error())
	}

	// ?store=false parses without recording, for preview/confirmation flows.
	if !c.QueryBool("store", true) {
		txn := parser.Parse(msg)
		return c.JSON(parseResponse{Match: txn != nil, Transaction: txn})
	}

	txn, stored, err := s.engine.IngestOne(c.Context(), msg)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(parseResponse{Match: txn != nil, Stored: stored, Transaction: txn})
}

func (s *Server) handleBatch(c *fiber.Ctx) error {
	var reqs []MessageRequest
	if err := c.BodyParser(&reqs); err != nil {
		return badRequest(c, "invalid JSON body")
	}

	msgs := make([]model.Message, 0, len(reqs))
	for i, req := range reqs {
		msg, err := req.toMessage()
		if err != nil {
			return badRequest(c, fmt.Sprintf("message at index %d: %v", i, err))
		}
		msgs = append(msgs, msg)
	}

	stats, err := s.engine.Ingest(c.Context(), msgs)
	if err != nil {
		if errors.Is(err, common.ErrNoMessages) {
			return badRequest(c, "empty batch")
		}
		return internalError(c, err)
	}
	return c.JSON(stats)
}

func (s *Server) handleListTransactions(c *fiber.Ctx) error {
	opts := service.ListOptions{
		Limit:    c.QueryInt("limit", 50),
		Category: model.Category(c.Query("category")),
	}

	txns, err := s.store.ListTransactions(c.Context(), opts)
	if err != nil {
		return internalError(c, err)
	}
	if txns == nil {
		txns = []model.ParsedTransaction{}
	}
	return c.JSON(fiber.Map{"transactions": txns, "count": len(txns)})
}

func (s *Server) handleCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": parser.CategoryTable()})
}

func (req MessageRequest) toMessage() (model.Message, error) {
	if req.Body == "" {
		return model.Message{}, errors.New("body is required")
	}

	receivedAt := time.Now().UTC()
	if req.ReceivedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ReceivedAt)
		if err != nil {
			return model.Message{}, errors.New("receivedAt must be RFC 3339")
		}
		receivedAt = parsed
	}

	return model.Message{
		Body:       req.Body,
		Sender:     req.Sender,
		ReceivedAt: receivedAt,
	}, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx, err error) error {
	common.LogError(err, "request failed", common.Fields{"path": c.Path()})
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
