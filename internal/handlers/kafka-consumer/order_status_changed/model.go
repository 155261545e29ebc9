package order_status_changed

// statusChangedEvent — сообщение топика order.status.changed.
type statusChangedEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
