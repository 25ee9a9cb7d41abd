package handler

import (
	"Crewly/pkg/context"
	"Crewly/pkg/response"
	"Crewly/service"

	"github.com/gin-gonic/gin"
)

type StreakHandler struct {
	Streaks service.IStreakService
}

type checkInReq struct {
	MemberID int64 `json:"member_id" binding:"required"`
	GroupID  int64 `json:"group_id" binding:"required"`
	EventID  int64 `json:"event_id" binding:"required"`
}

type streakBreaksReq struct {
	GroupID int64 `json:"group_id" binding:"required"`
	EventID int64 `json:"event_id" binding:"required"`
}

func (h *StreakHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/streaks/checkin", context.Wrap(h.CheckIn))
	r.POST("/v1/streaks/breaks", context.Wrap(h.Breaks))
}

func (h *StreakHandler) CheckIn(c *gin.Context) error {
	var req checkInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	if err := h.Streaks.UpdateStreakOnCheckIn(c.Request.Context(), req.MemberID, req.GroupID, req.EventID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// Breaks runs the post-event sweep over "going" RSVPs that never checked in.
func (h *StreakHandler) Breaks(c *gin.Context) error {
	var req streakBreaksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}
	if err := h.Streaks.CheckStreakBreaks(c.Request.Context(), req.EventID, req.GroupID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
