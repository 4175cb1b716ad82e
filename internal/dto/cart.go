package dto

import "github.com/shopspring/decimal"

type AddItemRequest struct {
	Category string `json:"category"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type LineItemDTO struct {
	Category  string          `json:"category"`
	Product   string          `json:"product"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items  []LineItemDTO   `json:"items"`
	Total  decimal.Decimal `json:"total"`
	Status string          `json:"status"`
}
