package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/voltride/storefront/internal/logger"
	"github.com/voltride/storefront/internal/provider"
	"github.com/voltride/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmation, c.handleOrderConfirmation)
}

// handleOrderConfirmation 确认新订单并记录确认时间
func (c *Consumer) handleOrderConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderService.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_not_found", "order_id", payload.OrderID)
		return nil
	}
	if order.ConfirmedAt != nil {
		return nil
	}

	if err := c.OrderService.MarkConfirmed(order.ID, time.Now()); err != nil {
		logger.Warnw("worker_order_confirmation_mark_failed", "order_id", order.ID, "order_no", order.OrderNo, "error", err)
		return err
	}
	logger.Infow("worker_order_confirmed",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"total_centimes", int64(order.TotalCentimes),
	)
	return nil
}
