package queue

import (
	"encoding/json"

	"github.com/voltride/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmation 订单确认任务
	TaskOrderConfirmation = constants.TaskOrderConfirmation
)

// OrderConfirmationPayload 订单确认任务载荷
type OrderConfirmationPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderConfirmationTask 创建订单确认任务
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmation, body), nil
}
