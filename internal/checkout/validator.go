package checkout

import (
	"strings"

	"babashop/internal/domain"
	apperrors "babashop/internal/errors"
)

// Validate gates order formatting on the required customer fields. All
// failing fields are aggregated into a single ValidationError, details
// ordered name then phone, so identical input always yields an
// identical error. It never touches the cart.
func Validate(customer domain.CustomerInfo) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(customer.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Code:    apperrors.CodeMissingName,
			Message: "customer name is required",
		})
	}

	if strings.TrimSpace(customer.Phone) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "phone",
			Code:    apperrors.CodeMissingPhone,
			Message: "customer phone is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("customer info is incomplete", details...)
	}

	return nil
}
