package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"babashop/internal/cart"
	"babashop/internal/checkout"
	"babashop/internal/domain"
	apperrors "babashop/internal/errors"
)

func newTestUseCase() *CheckoutUseCase {
	formatter := checkout.NewFormatter("https://wa.me", "917498765189")
	return NewCheckoutUseCase(formatter, 220, zap.NewNop())
}

func newTestCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore()
	require.NoError(t, store.AddItem("Beverages", "Tea", decimal.NewFromInt(10), 2))
	require.NoError(t, store.AddItem("Beverages", "Coffee", decimal.NewFromInt(15), 1))
	return store
}

func TestCheckout_Success(t *testing.T) {
	uc := newTestUseCase()
	store := newTestCart(t)
	customer := domain.CustomerInfo{Name: "Asha", Phone: "9990001111"}

	result, err := uc.Checkout(context.Background(), store, customer)
	require.NoError(t, err)

	assert.Equal(t,
		"Customer: Asha (9990001111)\nOrder:\n- Tea x 2 = ₹20\n- Coffee x 1 = ₹15\n\nTotal = ₹35",
		result.Transcript,
	)
	assert.Contains(t, result.ChannelAddress, "https://wa.me/917498765189?text=")
	assert.True(t, result.Total.Equal(decimal.NewFromInt(35)))

	require.NotEmpty(t, result.QRPNG)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, result.QRPNG[:4])

	// Submission keeps the cart intact.
	assert.Equal(t, domain.CartStatusSubmitted, store.Status())
	assert.Len(t, store.Items(), 2)
}

func TestCheckout_Rerender_IsByteStable(t *testing.T) {
	uc := newTestUseCase()
	store := newTestCart(t)
	customer := domain.CustomerInfo{Name: "Asha", Phone: "9990001111"}

	first, err := uc.Checkout(context.Background(), store, customer)
	require.NoError(t, err)
	second, err := uc.Checkout(context.Background(), store, customer)
	require.NoError(t, err)

	assert.Equal(t, first.Transcript, second.Transcript)
	assert.Equal(t, first.ChannelAddress, second.ChannelAddress)
	assert.Equal(t, first.QRPNG, second.QRPNG)
}

func TestCheckout_EmptyCart(t *testing.T) {
	uc := newTestUseCase()
	store := cart.NewStore()

	_, err := uc.Checkout(context.Background(), store, domain.CustomerInfo{Name: "Asha", Phone: "9990001111"})
	require.Error(t, err)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.HasCode(apperrors.CodeEmptyCart))
}

func TestCheckout_InvalidCustomer_LeavesCartUntouched(t *testing.T) {
	uc := newTestUseCase()
	store := newTestCart(t)

	_, err := uc.Checkout(context.Background(), store, domain.CustomerInfo{Name: "", Phone: ""})
	require.Error(t, err)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.HasCode(apperrors.CodeMissingName))
	assert.True(t, ve.HasCode(apperrors.CodeMissingPhone))

	assert.Equal(t, domain.CartStatusHasItems, store.Status())
	assert.Len(t, store.Items(), 2)
	assert.True(t, store.Total().Equal(decimal.NewFromInt(35)))
}
