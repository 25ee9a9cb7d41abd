package context

import (
	"Crewly/pkg/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CtxMemberID = "member_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// GetMemberID reads the id the auth layer placed on the context. Auth itself
// lives outside this service; the engine trusts the value.
func GetMemberID(c *gin.Context) (int64, error) {
	if v, ok := c.Get(CtxMemberID); ok {
		if id, ok := v.(int64); ok {
			return id, nil
		}
	}
	// header fallback for internal calls
	if raw := c.GetHeader("X-Member-ID"); raw != "" {
		return strconv.ParseInt(raw, 10, 64)
	}
	return 0, errors.New("member_id missing from context")
}

func ParamInt64(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
