package consumer

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"go-giftstore-api/internal/cart"
	"go-giftstore-api/internal/order"
)

// handleOrderCreated clears the cart the order was placed from. Running it
// here, off the event, keeps checkout fast and makes the clear retryable.
func handleOrderCreated(ctx context.Context, payload []byte, cartService cart.Service, logger *zap.Logger) error {
	var data order.OrderCreatedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	sess := cart.Session{SessionID: data.SessionID, UserID: data.UserID}
	if err := cartService.Clear(ctx, sess); err != nil {
		return err
	}

	logger.Info("cart cleared after checkout",
		zap.String("order_id", data.OrderID),
		zap.String("session_id", data.SessionID),
	)
	return nil
}
