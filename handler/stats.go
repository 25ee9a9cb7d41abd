package handler

import (
	"Crewly/pkg/context"
	"Crewly/pkg/response"
	"Crewly/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	MyStats service.IMyStatsService
	Crew    service.ICrewScoreService
}

func (h *StatsHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/groups/:group_id/me/stats", context.Wrap(h.Dashboard))
	r.GET("/v1/groups/:group_id/me/score", context.Wrap(h.Score))
}

func (h *StatsHandler) Dashboard(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	groupID, err := context.ParamInt64(c, "group_id")
	if err != nil {
		return response.NewError(400, "invalid group_id")
	}

	dash, err := h.MyStats.GetMemberStats(c.Request.Context(), memberID, groupID)
	if err != nil {
		return err
	}
	response.Success(c, dash)
	return nil
}

func (h *StatsHandler) Score(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	groupID, err := context.ParamInt64(c, "group_id")
	if err != nil {
		return response.NewError(400, "invalid group_id")
	}

	score, err := h.Crew.CalculateMemberCrewScore(c.Request.Context(), memberID, groupID)
	if err != nil {
		return err
	}
	response.Success(c, score)
	return nil
}
