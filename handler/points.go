package handler

import (
	"Crewly/models"
	"Crewly/pkg/context"
	"Crewly/pkg/response"
	"Crewly/service"
	"Crewly/types"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	Points service.IPointsService
}

func (h *PointsHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/points/award", context.Wrap(h.Award))
	r.GET("/v1/groups/:group_id/points/month", context.Wrap(h.MonthBreakdown))
}

func (h *PointsHandler) Award(c *gin.Context) error {
	var req types.AwardPointsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	result, err := h.Points.AwardSpiritPoints(c.Request.Context(),
		req.MemberID, req.GroupID, models.SpiritAction(req.Action), req.RefID, req.Override)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *PointsHandler) MonthBreakdown(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	groupID, err := context.ParamInt64(c, "group_id")
	if err != nil {
		return response.NewError(400, "invalid group_id")
	}

	breakdown, err := h.Points.MonthlyBreakdown(c.Request.Context(), memberID, groupID)
	if err != nil {
		return err
	}
	response.Success(c, breakdown)
	return nil
}
