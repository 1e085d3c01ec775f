package public

import (
	"strings"

	"github.com/voltride/storefront/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ensureCartID 解析请求头中的购物车标识，缺失或非法时生成新 ID。
// 生成或原样回显的 ID 写回响应头，客户端据此保持后续请求的购物车身份。
func ensureCartID(c *gin.Context) string {
	cartID := strings.TrimSpace(c.GetHeader(constants.CartIDHeader))
	if _, err := uuid.Parse(cartID); err != nil {
		cartID = uuid.NewString()
	}
	c.Header(constants.CartIDHeader, cartID)
	return cartID
}
