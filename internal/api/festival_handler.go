package api

import (
	"net/http"
	"strconv"

	"FestivalSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FestivalHandler serves the festival list and the two detail lookups.
type FestivalHandler struct {
	svc    *service.FestivalService
	logger *logrus.Logger
}

func NewFestivalHandler(svc *service.FestivalService, logger *logrus.Logger) *FestivalHandler {
	return &FestivalHandler{svc: svc, logger: logger}
}

// ListFestivals handles GET /api/festivals.
// eventStartDate defaults to Jan 1 of the current year; areaCode is optional.
func (h *FestivalHandler) ListFestivals(c *gin.Context) {
	params := service.ListParams{
		EventStartDate: c.Query("eventStartDate"),
		AreaCode:       c.Query("areaCode"),
		Page:           intQuery(c, "page", 1),
		PageSize:       intQuery(c, "pageSize", 10),
	}

	result, err := h.svc.ListFestivals(c.Request.Context(), params)
	if err != nil {
		h.logger.WithError(err).Error("list festivals failed")
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetIntro handles GET /api/intro?contentId=...
func (h *FestivalHandler) GetIntro(c *gin.Context) {
	contentID := c.Query("contentId")
	if contentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: contentId"})
		return
	}

	items, err := h.svc.GetIntro(c.Request.Context(), contentID)
	if err != nil {
		h.logger.WithError(err).WithField("content_id", contentID).Error("intro detail failed")
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetCommon handles GET /api/common?contentId=...
func (h *FestivalHandler) GetCommon(c *gin.Context) {
	contentID := c.Query("contentId")
	if contentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: contentId"})
		return
	}

	items, err := h.svc.GetCommon(c.Request.Context(), contentID)
	if err != nil {
		h.logger.WithError(err).WithField("content_id", contentID).Error("common detail failed")
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// respondUpstreamError keeps the contract the mobile clients were built
// against: upstream transport/decode failures come back as HTTP 200 with an
// error field in the body, not as a 5xx.
func respondUpstreamError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{"error": err.Error()})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}
