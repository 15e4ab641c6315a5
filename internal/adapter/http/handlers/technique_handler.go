package handlers

import (
	response "clinica_fisio/internal/adapter/http/dto/response"
	"clinica_fisio/internal/usecase"
	"clinica_fisio/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TechniqueHandler struct {
	usecase usecase.ITechniqueUseCase
}

func NewTechniqueHandler(uc usecase.ITechniqueUseCase) *TechniqueHandler {
	return &TechniqueHandler{usecase: uc}
}

// ListActive godoc
// @Summary      List active techniques
// @Tags         techniques
// @Produce      json
// @Success      200  {array}  response.TechniqueResponse
// @Router       /techniques [get]
func (h *TechniqueHandler) ListActive(c *gin.Context) {
	items, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, mapTechniqueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTechniques(items))
}

// GetByID godoc
// @Summary      Get a technique
// @Tags         techniques
// @Produce      json
// @Param        id   path      string  true  "Technique ID"
// @Success      200  {object}  response.TechniqueResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /techniques/{id} [get]
func (h *TechniqueHandler) GetByID(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapTechniqueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTechnique(t))
}

func mapTechniqueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechniqueID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrTechniqueNotFound):
		return pkg.NewDomainErrorSimple("TECHNIQUE_NOT_FOUND", "Technique not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
