package handler

import (
	"Crewly/pkg/context"
	"Crewly/pkg/response"
	"Crewly/service"

	"github.com/gin-gonic/gin"
)

type BadgeHandler struct {
	Badges service.IBadgeService
}

func (h *BadgeHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/groups/:group_id/badges/check", context.Wrap(h.Check))
	r.GET("/v1/groups/:group_id/badges", context.Wrap(h.List))
}

func (h *BadgeHandler) Check(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	groupID, err := context.ParamInt64(c, "group_id")
	if err != nil {
		return response.NewError(400, "invalid group_id")
	}

	newBadges, err := h.Badges.CheckAndAwardBadges(c.Request.Context(), memberID, groupID)
	if err != nil {
		return err
	}
	response.Success(c, newBadges)
	return nil
}

func (h *BadgeHandler) List(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	groupID, err := context.ParamInt64(c, "group_id")
	if err != nil {
		return response.NewError(400, "invalid group_id")
	}

	badges, err := h.Badges.ListMemberBadges(c.Request.Context(), memberID, groupID)
	if err != nil {
		return err
	}
	response.Success(c, badges)
	return nil
}
