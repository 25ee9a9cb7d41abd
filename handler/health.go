package handler

import (
	"Crewly/pkg/context"
	"Crewly/pkg/response"
	"Crewly/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Health service.IHealthService
}

func (h *HealthHandler) RegisterRouter(r gin.IRouter) {
	// POST because each call recomputes and persists
	r.POST("/v1/groups/:group_id/health", context.Wrap(h.Calculate))
}

func (h *HealthHandler) Calculate(c *gin.Context) error {
	groupID, err := context.ParamInt64(c, "group_id")
	if err != nil {
		return response.NewError(400, "invalid group_id")
	}

	result, err := h.Health.CalculateGroupHealthScore(c.Request.Context(), groupID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
