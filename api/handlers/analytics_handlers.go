package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reply-pilot/dto"
	"reply-pilot/logger"
	"reply-pilot/services"
)

// AnalyticsHandler godoc
// @Summary      Usage analytics
// @Description  Returns the running analytics aggregate: totals, success rate, latency, sentiment distribution and time series.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  models.Analytics
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /analytics [get]
func AnalyticsHandler(svc *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		agg, err := svc.Snapshot(c.Request.Context())
		if err != nil {
			logger.Log.Errorf("failed to load analytics snapshot: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "analytics_unavailable"})
			return
		}

		c.JSON(http.StatusOK, agg)
	}
}
