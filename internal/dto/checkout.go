package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CheckoutResponse struct {
	TraceID        string          `json:"traceId"`
	Transcript     string          `json:"transcript"`
	ChannelAddress string          `json:"channelAddress"`
	QRCodePNG      string          `json:"qrCodePng"` // base64
	Total          decimal.Decimal `json:"total"`
	Timestamp      time.Time       `json:"timestamp"`
}
