package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KixPanganiban/hackrecap/internal/model"
)

const pageSize = 20

type StoryStore interface {
	Feed(limit, offset int) ([]model.Story, error)
	FeedTotal() (int, error)
	LatestTime() (int64, error)
}

type StoryHandler struct {
	repository StoryStore
}

func NewStoryHandler(repository StoryStore) *StoryHandler {
	return &StoryHandler{repository: repository}
}

func toStoryResponse(s model.Story) StoryResponse {
	return StoryResponse{
		ID:      s.ID,
		Title:   s.Title,
		URL:     s.URL,
		Time:    s.Time,
		Score:   s.Score,
		Summary: s.Summary.String,
		Image:   s.Image.String,
	}
}

// GetStories serves the JSON feed of summarized stories.
func (h *StoryHandler) GetStories(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	stories, err := h.repository.Feed(limit, offset)
	if err != nil {
		slog.Error("error fetching stories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.FeedTotal()
	if err != nil {
		slog.Error("error fetching story total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := StoriesResponse{
		Count:   len(stories),
		Total:   total,
		Stories: make([]StoryResponse, 0, len(stories)),
	}
	for _, s := range stories {
		res.Stories = append(res.Stories, toStoryResponse(s))
	}

	c.JSON(http.StatusOK, res)
}

// GetIndex renders the HTML front page, paginated by pageSize.
func (h *StoryHandler) GetIndex(c *gin.Context) {
	page := getQueryInt("p", 1, c)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	stories, err := h.repository.Feed(pageSize, offset)
	if err != nil {
		slog.Error("error fetching stories", "error", err)
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	total, err := h.repository.FeedTotal()
	if err != nil {
		slog.Error("error fetching story total", "error", err)
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	latest, err := h.repository.LatestTime()
	if err != nil {
		slog.Error("error fetching latest story time", "error", err)
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	res := make([]StoryResponse, 0, len(stories))
	for _, s := range stories {
		res = append(res, toStoryResponse(s))
	}

	totalPages := (total + pageSize - 1) / pageSize
	latestAt := ""
	if latest > 0 {
		latestAt = time.Unix(latest, 0).UTC().Format("2006-01-02 15:04:05")
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Stories":    res,
		"Page":       page,
		"PrevPage":   page - 1,
		"NextPage":   page + 1,
		"TotalPages": totalPages,
		"Latest":     latestAt,
	})
}

func (h *StoryHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.FeedTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = pageSize
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
