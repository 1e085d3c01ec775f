package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskOrderConfirmation = "order:confirmation"
)

// 购物车常量
const (
	// CartIDHeader 客户端携带购物车标识的请求头
	CartIDHeader = "X-Cart-ID"
	// CartSchemaVersion 当前购物车持久化结构版本
	CartSchemaVersion = 2
)

// 货币常量（金额统一为分位最小单位）
const (
	CurrencyDZD = "DZD"
)
