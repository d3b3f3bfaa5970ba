package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"emotions_api/pkg/emotions"
	"emotions_api/pkg/metrics"
	"emotions_api/pkg/prompting"
)

// Generator produces one text completion for a fully-rendered prompt.
// The call is the service's only blocking boundary; it must honor ctx
// cancellation.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Error codes let callers tell a bad request from a suspect or failed
// model response without inspecting the message text.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeUpstreamInvalid     = "upstream_invalid"
	CodeUpstreamUnavailable = "upstream_unavailable"
)

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

type ProfileRequest struct {
	TrackID string `json:"track_id"`
	Lyrics  string `json:"lyrics"`
}

type ProfileResponse struct {
	TrackID          string           `json:"track_id"`
	Lyrics           string           `json:"lyrics"`
	EmotionalProfile emotions.Profile `json:"emotional_profile"`
}

type TagsRequest struct {
	TrackID string `json:"track_id"`
	Lyrics  string `json:"lyrics"`
	Emotion string `json:"emotion"`
}

type TagsResponse struct {
	TrackID string           `json:"track_id"`
	Lyrics  string           `json:"lyrics"`
	Emotion emotions.Emotion `json:"emotion"`
}

type Handlers struct {
	generator Generator
	registry  *metrics.Registry
	timeout   time.Duration
}

// NewHandlers constructs Handlers around the given generator. The
// timeout bounds each model call; registry may be nil.
func NewHandlers(generator Generator, registry *metrics.Registry, timeout time.Duration) *Handlers {
	return &Handlers{generator: generator, registry: registry, timeout: timeout}
}

// Register wires the handler routes onto the server.
func (h *Handlers) Register(e *echo.Echo) {
	e.GET("/", h.Health)
	e.POST("/emotions/profile", h.EmotionalProfile)
	e.POST("/emotions/tags", h.EmotionalTags)
}

// Health handles GET /
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "running"})
}

// EmotionalProfile handles POST /emotions/profile
func (h *Handlers) EmotionalProfile(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "profile", "malformed request body")
	}
	if strings.TrimSpace(req.Lyrics) == "" {
		return h.badRequest(c, "profile", "lyrics must not be empty")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	out, err := h.generator.Generate(ctx, prompting.EmotionalProfilePrompt(req.Lyrics))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("track_id", req.TrackID).Msg("model call failed")
		h.count(ctx, "profile", CodeUpstreamUnavailable)
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{CodeUpstreamUnavailable, "text generation failed"})
	}

	profile, err := emotions.ParseProfile([]byte(out))
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("track_id", req.TrackID).Msg("model output rejected")
		h.count(ctx, "profile", CodeUpstreamInvalid)
		return c.JSON(http.StatusBadGateway, ErrorResponse{CodeUpstreamInvalid, err.Error()})
	}

	h.count(ctx, "profile", "ok")
	return c.JSON(http.StatusOK, ProfileResponse{
		TrackID:          req.TrackID,
		Lyrics:           req.Lyrics,
		EmotionalProfile: profile,
	})
}

// EmotionalTags handles POST /emotions/tags
func (h *Handlers) EmotionalTags(c echo.Context) error {
	var req TagsRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, "tags", "malformed request body")
	}
	if strings.TrimSpace(req.Lyrics) == "" {
		return h.badRequest(c, "tags", "lyrics must not be empty")
	}
	emotion, err := emotions.Parse(req.Emotion)
	if err != nil {
		return h.badRequest(c, "tags", err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	out, err := h.generator.Generate(ctx, prompting.EmotionalTagsPrompt(req.Lyrics, emotion))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("track_id", req.TrackID).Msg("model call failed")
		h.count(ctx, "tags", CodeUpstreamUnavailable)
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{CodeUpstreamUnavailable, "text generation failed"})
	}

	if err := emotions.ValidateTagged(req.Lyrics, out, emotion); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("track_id", req.TrackID).Msg("model output rejected")
		h.count(ctx, "tags", CodeUpstreamInvalid)
		return c.JSON(http.StatusBadGateway, ErrorResponse{CodeUpstreamInvalid, err.Error()})
	}

	h.count(ctx, "tags", "ok")
	return c.JSON(http.StatusOK, TagsResponse{
		TrackID: req.TrackID,
		Lyrics:  out,
		Emotion: emotion,
	})
}

func (h *Handlers) badRequest(c echo.Context, analysis, message string) error {
	h.count(c.Request().Context(), analysis, CodeInvalidRequest)
	return c.JSON(http.StatusBadRequest, ErrorResponse{CodeInvalidRequest, message})
}

func (h *Handlers) count(ctx context.Context, analysis, outcome string) {
	if h.registry == nil {
		return
	}
	h.registry.Inc(ctx, "emotion_requests_total", map[string]string{
		"analysis": analysis,
		"outcome":  outcome,
	})
}
