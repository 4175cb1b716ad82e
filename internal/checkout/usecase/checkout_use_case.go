package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"babashop/internal/checkout"
	"babashop/internal/domain"
	apperrors "babashop/internal/errors"
)

// CartStore is the slice of the session cart the checkout flow needs.
type CartStore interface {
	Items() []domain.LineItem
	Total() decimal.Decimal
	MarkSubmitted()
}

// Result carries everything the presentation layer renders after a
// successful checkout. Transcript is the exact pre-encoding payload;
// ChannelAddress and QRPNG both encode it.
type Result struct {
	Transcript     string
	ChannelAddress string
	QRPNG          []byte
	Total          decimal.Decimal
}

type CheckoutUseCase struct {
	formatter *checkout.Formatter
	qrSize    int
	logger    *zap.Logger
}

func NewCheckoutUseCase(formatter *checkout.Formatter, qrSize int, logger *zap.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		formatter: formatter,
		qrSize:    qrSize,
		logger:    logger,
	}
}

// Checkout validates the customer, then formats the current cart into a
// transcript, channel address and QR code. A failed validation leaves
// the cart and customer fields untouched; on success the cart is marked
// submitted but not cleared, so reopening the panel re-renders the same
// order byte for byte.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, store CartStore, customer domain.CustomerInfo) (*Result, error) {
	items := store.Items()
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("cart is empty", apperrors.ValidationDetail{
			Field:   "cart",
			Code:    apperrors.CodeEmptyCart,
			Message: "add at least one item before checkout",
		})
	}

	if err := checkout.Validate(customer); err != nil {
		return nil, err
	}

	total := store.Total()
	transcript := uc.formatter.Transcript(customer, items, total)
	address := uc.formatter.ChannelAddress(transcript)

	png, err := checkout.EncodeQR(address, uc.qrSize)
	if err != nil {
		return nil, err
	}

	store.MarkSubmitted()
	uc.logger.Info("order formatted",
		zap.Int("itemCount", len(items)),
		zap.String("total", checkout.FormatAmount(total)),
	)

	return &Result{
		Transcript:     transcript,
		ChannelAddress: address,
		QRPNG:          png,
		Total:          total,
	}, nil
}
