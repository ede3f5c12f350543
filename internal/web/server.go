package web

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nleiva/contentscale/internal/app"
	"github.com/nleiva/contentscale/internal/attach"
	"github.com/nleiva/contentscale/internal/web/templates"
	"github.com/nleiva/contentscale/pkg/backend"
)

const (
	defaultAddress    = ":3000"
	htmlContentType   = "text/html; charset=utf-8"
	sessionCookieName = "contentscale_session_id"
	sessionMaxAge     = 24 * time.Hour
	cleanupInterval   = 30 * time.Minute
)

// Server represents the web server with session management
type Server struct {
	app            *fiber.App
	service        *app.Service
	sessionManager app.SessionManager
}

// WebRunner handles web server mode with consistent signature
type WebRunner struct {
	address string
}

// NewWebRunner creates a new web runner for the specified address
func NewWebRunner(address string) *WebRunner {
	return &WebRunner{address: address}
}

// Run starts the web server backed by svc
func (w *WebRunner) Run(svc *app.Service) error {
	server := NewServer(svc)
	return server.Run(w.address)
}

// NewServer creates a new web server instance with session management
func NewServer(svc *app.Service) *Server {
	fiberApp := fiber.New(fiber.Config{
		DisableStartupMessage: false,
		BodyLimit:             attach.MaxSize + 1<<20,
	})

	// Middleware
	fiberApp.Use(logger.New())
	fiberApp.Use(recover.New())

	server := &Server{
		app:            fiberApp,
		service:        svc,
		sessionManager: app.NewInMemorySessionManager(svc, sessionMaxAge),
	}

	server.setupRoutes()

	// Start cleanup routine for expired sessions
	go server.startSessionCleanup()

	return server
}

// startSessionCleanup runs a background cleanup routine for expired sessions
func (s *Server) startSessionCleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		if cleaned := s.sessionManager.CleanupExpiredSessions(); cleaned > 0 {
			slog.Info("cleaned up expired sessions", "count", cleaned)
		}
	}
}

// getOrCreateSession gets an existing session or creates a new one for the user
func (s *Server) getOrCreateSession(c *fiber.Ctx) (*app.Session, error) {
	sessionID := c.Cookies(sessionCookieName)

	if sessionID != "" {
		if session, err := s.sessionManager.GetSession(sessionID); err == nil {
			return session, nil
		}
	}

	session, err := s.sessionManager.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		MaxAge:   int(sessionMaxAge.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return session, nil
}

// sessionHandler resolves the caller's session before running h
func (s *Server) sessionHandler(h func(*fiber.Ctx, *app.Session) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := s.getOrCreateSession(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to get session: " + err.Error())
		}
		return h(c, session)
	}
}

func (s *Server) setupRoutes() {
	s.app.Get("/favicon.ico", s.handleFavicon)

	s.app.Get("/", s.sessionHandler(s.handleHome))
	s.app.Get("/status", s.sessionHandler(s.handleStatus))

	// Chat
	s.app.Post("/chat", s.sessionHandler(s.handleChat))
	s.app.Post("/attach", s.sessionHandler(s.handleAttach))
	s.app.Get("/golden", s.handleGolden)
	s.app.Post("/reset", s.sessionHandler(s.handleReset))

	// Selection and content
	s.app.Post("/select", s.sessionHandler(s.handleSelect))
	s.app.Post("/language", s.sessionHandler(s.handleLanguage))
	s.app.Post("/combination", s.sessionHandler(s.handleCombination))
	s.app.Post("/combination/next", s.sessionHandler(s.handleNextCombination))
	s.app.Post("/combination/prev", s.sessionHandler(s.handlePrevCombination))
	s.app.Post("/variant", s.sessionHandler(s.handleVariant))
	s.app.Post("/highlight", s.sessionHandler(s.handleHighlight))
	s.app.Post("/translate", s.sessionHandler(s.handleTranslate))
	s.app.Get("/assessment", s.sessionHandler(s.handleAssessment))
	s.app.Post("/generate-all", s.sessionHandler(s.handleGenerateAll))

	// Library
	s.app.Get("/library", s.sessionHandler(s.handleLibrary))
	s.app.Post("/library", s.sessionHandler(s.handleAddToLibrary))
	s.app.Delete("/library/:id", s.sessionHandler(s.handleDeleteLibraryItem))

	// Conversations
	s.app.Post("/conversations", s.sessionHandler(s.handleNewConversation))
	s.app.Post("/conversations/:id/select", s.sessionHandler(s.handleSwitchConversation))
	s.app.Delete("/conversations/:id", s.sessionHandler(s.handleDeleteConversation))
}

// renderComponent is a helper to render templ components
func (s *Server) renderComponent(c *fiber.Ctx, component templ.Component) error {
	c.Set("Content-Type", htmlContentType)
	return component.Render(c.Context(), c.Response().BodyWriter())
}

// fail maps domain errors to a status code and renders them as a notice
func (s *Server) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, app.ErrNoContent):
		status = fiber.StatusBadRequest
	case errors.Is(err, app.ErrConversationNotFound), errors.Is(err, app.ErrLibraryItemNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, app.ErrLastConversation):
		status = fiber.StatusConflict
	}
	if status == fiber.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "error", err)
	}
	c.Status(status)
	return s.renderComponent(c, templates.Notice(err.Error()))
}

func (s *Server) view(session *app.Session) templates.View {
	return templates.View{
		State:   session.State(),
		Catalog: s.service.Catalog(),
		Now:     time.Now(),
	}
}

func (s *Server) workspace(c *fiber.Ctx, session *app.Session) error {
	return s.renderComponent(c, templates.Workspace(s.view(session)))
}

func (s *Server) contentPanel(c *fiber.Ctx, session *app.Session) error {
	return s.renderComponent(c, templates.ContentPanel(s.view(session), false))
}

func (s *Server) handleFavicon(c *fiber.Ctx) error {
	// Return a simple 204 No Content for favicon requests
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleHome(c *fiber.Ctx, session *app.Session) error {
	return s.renderComponent(c, templates.Page(s.view(session)))
}

func (s *Server) handleChat(c *fiber.Ctx, session *app.Session) error {
	message := c.FormValue("message")
	if message == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Message is required")
	}
	return s.reply(c, session, message, nil)
}

func (s *Server) handleAttach(c *fiber.Ctx, session *app.Session) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("File is required")
	}
	f, err := fh.Open()
	if err != nil {
		return s.fail(c, fmt.Errorf("open upload: %w", err))
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, attach.MaxSize+1))
	if err != nil {
		return s.fail(c, fmt.Errorf("read upload: %w", err))
	}
	att := &attach.Attachment{Name: fh.Filename, Mime: fh.Header.Get("Content-Type"), Data: data}
	return s.reply(c, session, c.FormValue("message"), att)
}

// reply runs one chat turn and renders the exchange. New content is swapped
// into the content panel out of band.
func (s *Server) reply(c *fiber.Ctx, session *app.Session, message string, att *attach.Attachment) error {
	reply, err := session.SendMessage(c.UserContext(), message, att)
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			return s.fail(c, err)
		}
		return s.renderComponent(c, templates.MessageComponent(app.Message{
			Role:    backend.RoleAssistant,
			Content: "Error: " + err.Error(),
		}))
	}

	msgs := session.State().Current().Messages
	var user app.Message
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == backend.RoleUser {
			user = msgs[i]
			break
		}
	}

	var panel templ.Component
	if reply.Content != nil {
		panel = templates.ContentPanel(s.view(session), true)
	}
	return s.renderComponent(c, templates.ChatResponse(user, reply.Message, panel))
}

func (s *Server) handleGolden(c *fiber.Ctx) error {
	return s.renderComponent(c, templates.ChatForm(app.GoldenPrompt))
}

func (s *Server) handleReset(c *fiber.Ctx, session *app.Session) error {
	if err := session.Reset(); err != nil {
		return s.fail(c, err)
	}
	return s.workspace(c, session)
}

func (s *Server) handleSelect(c *fiber.Ctx, session *app.Session) error {
	countries := formValues(c, "country")
	assets := formValues(c, "asset")

	if _, err := session.UpdateSelection(c.UserContext(), countries, assets); err != nil {
		return s.fail(c, err)
	}
	return s.workspace(c, session)
}

func formValues(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Context().PostArgs().PeekMulti(key) {
		out = append(out, string(v))
	}
	return out
}

func (s *Server) handleLanguage(c *fiber.Ctx, session *app.Session) error {
	if _, err := session.SetLanguage(c.UserContext(), c.FormValue("language")); err != nil {
		return s.fail(c, err)
	}
	return s.contentPanel(c, session)
}

func (s *Server) handleCombination(c *fiber.Ctx, session *app.Session) error {
	if _, err := session.SelectCombination(c.UserContext(), c.FormValue("key")); err != nil {
		return s.fail(c, err)
	}
	return s.contentPanel(c, session)
}

func (s *Server) handleNextCombination(c *fiber.Ctx, session *app.Session) error {
	if _, err := session.NextCombination(c.UserContext()); err != nil {
		return s.fail(c, err)
	}
	return s.contentPanel(c, session)
}

func (s *Server) handlePrevCombination(c *fiber.Ctx, session *app.Session) error {
	if _, err := session.PrevCombination(c.UserContext()); err != nil {
		return s.fail(c, err)
	}
	return s.contentPanel(c, session)
}

func (s *Server) handleVariant(c *fiber.Ctx, session *app.Session) error {
	if _, err := session.CreateVariant(); err != nil {
		return s.fail(c, err)
	}
	return s.contentPanel(c, session)
}

func (s *Server) handleHighlight(c *fiber.Ctx, session *app.Session) error {
	if _, _, err := session.Highlight(c.FormValue("text")); err != nil {
		return s.fail(c, err)
	}
	return s.contentPanel(c, session)
}

func (s *Server) handleTranslate(c *fiber.Ctx, session *app.Session) error {
	text := c.FormValue("text")
	if text == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Text is required")
	}
	return s.renderComponent(c, templates.Translation(session.TranslateSentence(c.UserContext(), text)))
}

func (s *Server) handleAssessment(c *fiber.Ctx, session *app.Session) error {
	a, err := session.Assess()
	if err != nil {
		return s.fail(c, err)
	}
	return s.renderComponent(c, templates.AssessmentPanel(a))
}

func (s *Server) handleGenerateAll(c *fiber.Ctx, session *app.Session) error {
	items, err := session.GenerateAll(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return s.renderComponent(c, templates.BatchPanel(items, s.service.Catalog()))
}

func (s *Server) handleLibrary(c *fiber.Ctx, session *app.Session) error {
	return s.renderComponent(c, templates.LibraryPanel(session.State().Library))
}

func (s *Server) handleAddToLibrary(c *fiber.Ctx, session *app.Session) error {
	if _, err := session.AddToLibrary(); err != nil {
		return s.fail(c, err)
	}
	return s.handleLibrary(c, session)
}

func (s *Server) handleDeleteLibraryItem(c *fiber.Ctx, session *app.Session) error {
	if err := session.DeleteLibraryItem(c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return s.handleLibrary(c, session)
}

func (s *Server) handleNewConversation(c *fiber.Ctx, session *app.Session) error {
	if _, err := session.NewConversation(); err != nil {
		return s.fail(c, err)
	}
	return s.workspace(c, session)
}

func (s *Server) handleSwitchConversation(c *fiber.Ctx, session *app.Session) error {
	if err := session.SwitchConversation(c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return s.workspace(c, session)
}

func (s *Server) handleDeleteConversation(c *fiber.Ctx, session *app.Session) error {
	if err := session.DeleteConversation(c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return s.workspace(c, session)
}

// handleStatus returns session state and activity counters as JSON
func (s *Server) handleStatus(c *fiber.Ctx, session *app.Session) error {
	st := session.State()
	activity := session.Activity()

	var shown fiber.Map
	if d := st.Displayed(); d != nil {
		shown = fiber.Map{
			"id":       d.ID,
			"country":  d.Country,
			"type":     d.ContentType,
			"language": d.Language,
		}
	}

	return c.JSON(fiber.Map{
		"session": fiber.Map{
			"id":            session.ID,
			"conversations": len(st.Conversations),
			"current":       st.CurrentConversation,
			"countries":     st.Countries,
			"assets":        st.Assets,
			"language":      st.Language,
			"combination":   st.Combination,
			"variants":      len(st.Variants),
			"library":       len(st.Library),
			"generating":    st.Generating,
			"content":       shown,
		},
		"activity": fiber.Map{
			"questions":         activity.Questions,
			"instructions":      activity.Instructions,
			"generations":       activity.Generations,
			"modifications":     activity.Modifications,
			"translations":      activity.Translations,
			"attachments":       activity.Attachments,
			"stale_results":     activity.StaleResults,
			"failures":          activity.Failures,
			"avg_generation_ms": activity.AvgGenerationMs,
			"duration_seconds":  activity.Duration.Seconds(),
			"rules":             activity.Rules,
		},
		"integrations":    s.service.Integrations(),
		"active_sessions": s.sessionManager.Count(),
	})
}

// Run starts the web server
func (s *Server) Run(address string) error {
	if address == "" {
		address = defaultAddress
	}

	slog.Info("starting web server", "url", "http://localhost"+address, "session_max_age", sessionMaxAge)
	return s.app.Listen(address)
}
