package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// health godoc
// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:  "ok",
		Name:    h.config.Name,
		Version: h.config.Version,
	})
}
