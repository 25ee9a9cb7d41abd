package handler

import (
	"Crewly/pkg/context"
	"Crewly/pkg/response"
	"Crewly/service"

	"github.com/gin-gonic/gin"
)

type HallOfFameHandler struct {
	Fame service.IHallOfFameService
}

func (h *HallOfFameHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/groups/:group_id/hall-of-fame", context.Wrap(h.Records))
}

func (h *HallOfFameHandler) Records(c *gin.Context) error {
	groupID, err := context.ParamInt64(c, "group_id")
	if err != nil {
		return response.NewError(400, "invalid group_id")
	}

	records, err := h.Fame.GetHallOfFameRecords(c.Request.Context(), groupID)
	if err != nil {
		return err
	}
	response.Success(c, records)
	return nil
}
