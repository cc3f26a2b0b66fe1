package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reply-pilot/dto"
	"reply-pilot/models"
	"reply-pilot/services"
)

// GenerateHandler godoc
// @Summary      Generate review replies
// @Description  Builds three reply options (A/B/C) for a customer review, with sentiment analysis, suggestions and metadata.
// @Tags         generate
// @Accept       json
// @Produce      json
// @Param        body  body      models.GenerateRequest  true  "generation request"
// @Success      200   {object}  models.GenerateResponse
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      429   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /generate [post]
func GenerateHandler(svc *services.GenerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{
				Error:   "invalid_request",
				Message: "Invalid request body",
			})
			return
		}

		resp, gerr := svc.Generate(c.Request.Context(), clientID(c), req)
		if gerr != nil {
			c.JSON(gerr.StatusCode, dto.ErrorResponseDTO{
				Error:   gerr.ErrorCode,
				Message: gerr.Message,
				Field:   gerr.Field,
			})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
