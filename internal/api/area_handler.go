package api

import (
	"net/http"

	"FestivalSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AreaHandler serves the cached area-code reference table.
type AreaHandler struct {
	svc    *service.AreaCodeService
	logger *logrus.Logger
}

func NewAreaHandler(svc *service.AreaCodeService, logger *logrus.Logger) *AreaHandler {
	return &AreaHandler{svc: svc, logger: logger}
}

// ListAreaCodes handles GET /api/areacodes.
func (h *AreaHandler) ListAreaCodes(c *gin.Context) {
	codes, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("area code lookup failed")
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": codes})
}
