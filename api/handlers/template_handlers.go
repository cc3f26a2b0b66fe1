package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reply-pilot/dto"
	"reply-pilot/logger"
	"reply-pilot/models"
	"reply-pilot/services"
)

// ListTemplatesHandler godoc
// @Summary      List reply templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}   models.Template
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /templates [get]
func ListTemplatesHandler(svc *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		templates, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Log.Errorf("failed to list templates: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "templates_unavailable"})
			return
		}

		c.JSON(http.StatusOK, templates)
	}
}

// SaveTemplateHandler godoc
// @Summary      Create or update a reply template
// @Description  Upserts by id; a template without an id is created with a generated one.
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body  body      models.Template  true  "template"
// @Success      200   {object}  models.Template
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /templates [post]
func SaveTemplateHandler(svc *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var template models.Template
		if err := c.ShouldBindJSON(&template); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{
				Error:   "invalid_request",
				Message: "Invalid request body",
			})
			return
		}
		if template.Name == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{
				Error:   "invalid_request",
				Message: "Template name is required",
				Field:   "name",
			})
			return
		}

		saved, err := svc.Save(c.Request.Context(), template)
		if err != nil {
			logger.Log.Errorf("failed to save template: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "template_save_failed"})
			return
		}

		c.JSON(http.StatusOK, saved)
	}
}

// DeleteTemplateHandler godoc
// @Summary      Delete a reply template
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "template id"
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /templates/{id} [delete]
func DeleteTemplateHandler(svc *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			logger.Log.Errorf("failed to delete template: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "template_delete_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "template deleted"})
	}
}
