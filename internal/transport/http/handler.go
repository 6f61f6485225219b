package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/catalog"
	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/labstack/echo/v4"
)

// UserHeader carries the authenticated user id, set by the gateway in front
// of this service.
const UserHeader = "X-User-ID"

const userKey = "userID"

// Handler serves the practice REST API.
type Handler struct {
	service *app.PracticeService
}

func NewHandler(service *app.PracticeService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the API on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api", RequireUser)
	api.POST("/session/start", h.StartSession)
	api.GET("/session/question/:sessionId/:index", h.GetQuestion)
	api.POST("/session/answer", h.SubmitAnswer)
	api.GET("/session/result/:sessionId", h.GetResult)
	api.GET("/session/history", h.GetHistory)
	api.GET("/session/weak-areas", h.GetWeakAreas)
	api.GET("/profile", h.GetProfile)
	api.GET("/milestones", h.ListMilestones)
	api.GET("/milestones/topics", h.ListTopics)
	api.GET("/milestones/topic/:topicId", h.GetTopic)
}

// RequireUser rejects requests without a user id header.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Request().Header.Get(UserHeader)
		if userID == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + UserHeader + " header"})
		}
		c.Set(userKey, userID)
		return next(c)
	}
}

func userID(c echo.Context) string {
	if v, ok := c.Get(userKey).(string); ok {
		return v
	}
	return c.Request().Header.Get(UserHeader)
}

// StartSession creates a practice session.
// POST /api/session/start
func (h *Handler) StartSession(c echo.Context) error {
	var req domain.StartRequest
	if err := c.Bind(&req); err != nil {
		if errors.Is(err, domain.ErrInvalidQuestionCount) {
			return writeError(c, domain.ErrInvalidQuestionCount)
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	resp, err := h.service.Start(c.Request().Context(), userID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetQuestion returns one question without its answer key.
// GET /api/session/question/:sessionId/:index
func (h *Handler) GetQuestion(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return writeError(c, domain.ErrInvalidIndex)
	}
	view, err := h.service.Question(c.Request().Context(), userID(c), c.Param("sessionId"), index)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

type answerRequest struct {
	SessionID      string `json:"sessionId"`
	QuestionIndex  *int   `json:"questionIndex"`
	SelectedOption *int   `json:"selectedOption"`
}

// SubmitAnswer records an answer.
// POST /api/session/answer
func (h *Handler) SubmitAnswer(c echo.Context) error {
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.SessionID == "" || req.QuestionIndex == nil || req.SelectedOption == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sessionId, questionIndex and selectedOption are required"})
	}
	outcome, err := h.service.SubmitAnswer(c.Request().Context(), userID(c), req.SessionID, *req.QuestionIndex, *req.SelectedOption)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, outcome)
}

// GetResult scores and records the session.
// GET /api/session/result/:sessionId
func (h *Handler) GetResult(c echo.Context) error {
	result, err := h.service.Result(c.Request().Context(), userID(c), c.Param("sessionId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetHistory lists recent completed sessions.
// GET /api/session/history
func (h *Handler) GetHistory(c echo.Context) error {
	records, err := h.service.History(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// GET /api/session/weak-areas
func (h *Handler) GetWeakAreas(c echo.Context) error {
	report, err := h.service.WeakAreas(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GET /api/profile
func (h *Handler) GetProfile(c echo.Context) error {
	summary, err := h.service.Profile(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GET /api/milestones
func (h *Handler) ListMilestones(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Milestones())
}

// GET /api/milestones/topics?milestoneId=
func (h *Handler) ListTopics(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("milestoneId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "milestoneId must be an integer"})
	}
	m, ok := catalog.FindMilestone(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "milestone not found"})
	}
	return c.JSON(http.StatusOK, m.Topics)
}

// GET /api/milestones/topic/:topicId
func (h *Handler) GetTopic(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("topicId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "topicId must be an integer"})
	}
	topic, milestone, ok := catalog.FindTopic(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "topic not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"topic":         topic,
		"milestoneId":   milestone.ID,
		"milestoneName": milestone.Name,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidIndex), errors.Is(err, domain.ErrInvalidQuestionCount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionFinished):
		return http.StatusConflict
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[server] %s %s failed: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(status, map[string]string{"error": publicMessage(err)})
}

// publicMessage hides wrapped causes (driver errors, upstream responses).
func publicMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrSessionNotFound,
		domain.ErrInvalidIndex,
		domain.ErrInvalidQuestionCount,
		domain.ErrSessionFinished,
		domain.ErrGenerationFailed,
		domain.ErrPersistence,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}
