package order

import "time"

// PlaceOrderRequest 表示下单的入参。
// SubscriptionMonths 为 nil 时表示不订阅；出版物会忽略订阅。
type PlaceOrderRequest struct {
	ISBN               string `json:"isbn"`
	Quantity           int    `json:"quantity"`
	SubscriptionMonths *int   `json:"subscription_months,omitempty"`
}

// ConfirmationResponse 表示下单确认信息。
type ConfirmationResponse struct {
	ItemISBN string        `json:"item_isbn"`
	Quantity int           `json:"quantity"`
	Total    MoneyResponse `json:"total"`
}

// OrderResponse 表示订单返回模型。
type OrderResponse struct {
	ID                 int64                `json:"id"`
	ItemISBN           string               `json:"item_isbn"`
	ItemTitle          string               `json:"item_title"`
	ItemKind           string               `json:"item_kind"`
	Quantity           int                  `json:"quantity"`
	SubscriptionMonths *int                 `json:"subscription_months,omitempty"`
	Total              MoneyResponse        `json:"total"`
	Confirmation       ConfirmationResponse `json:"confirmation"`
	Description        string               `json:"description"`
	CreatedAt          time.Time            `json:"created_at"`
}

// MoneyResponse 表示金额返回模型。
type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}
