package handler

import (
	"Crewly/pkg/context"
	"Crewly/pkg/response"
	"Crewly/service"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	Board service.IBoardService
}

func (h *BoardHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/groups/:group_id/board", context.Wrap(h.Monthly))
}

func (h *BoardHandler) Monthly(c *gin.Context) error {
	memberID, err := context.GetMemberID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	groupID, err := context.ParamInt64(c, "group_id")
	if err != nil {
		return response.NewError(400, "invalid group_id")
	}

	board, err := h.Board.GetMonthlyBoardData(c.Request.Context(), groupID, memberID)
	if err != nil {
		return err
	}
	response.Success(c, board)
	return nil
}
