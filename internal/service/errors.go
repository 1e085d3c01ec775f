package service

import "errors"

// 服务层哨兵错误，由 handler 通过 errors.Is 映射为响应码
var (
	ErrProductNotAvailable  = errors.New("product not available")
	ErrVariantNotAvailable  = errors.New("variant not available")
	ErrVariantNotResolved   = errors.New("variant selection not resolved")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidCheckoutInput = errors.New("invalid checkout input")
	ErrDeliveryZoneInvalid  = errors.New("delivery zone invalid")
	ErrOrderNotFound        = errors.New("order not found")
)
