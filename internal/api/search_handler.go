package api

import (
	"errors"
	"net/http"

	"FestivalSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SearchHandler serves the nearby, keyword and region-name searches.
type SearchHandler struct {
	svc    *service.FestivalService
	logger *logrus.Logger
}

func NewSearchHandler(svc *service.FestivalService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, logger: logger}
}

// SearchNearby handles GET /api/nearby?latitude=..&longitude=..&radius=5000
func (h *SearchHandler) SearchNearby(c *gin.Context) {
	latitude := c.Query("latitude")
	longitude := c.Query("longitude")
	if latitude == "" || longitude == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters: latitude, longitude"})
		return
	}

	params := service.NearbyParams{
		Latitude:  latitude,
		Longitude: longitude,
		Radius:    c.Query("radius"),
		Page:      intQuery(c, "page", 1),
		PageSize:  intQuery(c, "pageSize", 10),
	}

	result, err := h.svc.SearchNearby(c.Request.Context(), params)
	if err != nil {
		h.logger.WithError(err).Error("nearby search failed")
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchByKeyword handles GET /api/search?keyword=...
func (h *SearchHandler) SearchByKeyword(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: keyword"})
		return
	}

	params := service.SearchParams{
		Keyword:  keyword,
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "pageSize", 10),
	}

	result, err := h.svc.SearchByKeyword(c.Request.Context(), params)
	if err != nil {
		h.logger.WithError(err).WithField("keyword", keyword).Error("keyword search failed")
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListByRegion handles GET /api/region?regionName=서울
func (h *SearchHandler) ListByRegion(c *gin.Context) {
	regionName := c.Query("regionName")
	if regionName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: regionName"})
		return
	}

	params := service.RegionParams{
		RegionName: regionName,
		Page:       intQuery(c, "page", 1),
		PageSize:   intQuery(c, "pageSize", 10),
	}

	result, err := h.svc.ListByRegion(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, service.ErrUnknownRegion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).WithField("region", regionName).Error("region search failed")
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
