package public

import (
	"errors"

	"github.com/voltride/storefront/internal/http/response"
	"github.com/voltride/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartItemErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrVariantNotAvailable, code: response.CodeBadRequest, key: "error.variant_not_available"},
	{target: service.ErrVariantNotResolved, code: response.CodeBadRequest, key: "error.variant_not_resolved"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrInvalidCheckoutInput, code: response.CodeBadRequest, key: "error.checkout_input_invalid"},
	{target: service.ErrDeliveryZoneInvalid, code: response.CodeBadRequest, key: "error.delivery_zone_invalid"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrVariantNotAvailable, code: response.CodeBadRequest, key: "error.variant_not_available"},
}

func respondCartItemError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartItemErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "error.order_create_failed")
}
