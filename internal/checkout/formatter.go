// Package checkout turns a cart plus customer identity into the
// outbound order message: a canonical text transcript, the WhatsApp
// deep link carrying it, and the QR code that encodes the same link.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"babashop/internal/domain"
)

const currencySymbol = "₹"

// Formatter renders order transcripts and channel addresses. The base
// URL and recipient are fixed deployment configuration, never user
// input.
type Formatter struct {
	baseURL   string
	recipient string
}

func NewFormatter(baseURL, recipient string) *Formatter {
	return &Formatter{
		baseURL:   strings.TrimRight(baseURL, "/"),
		recipient: recipient,
	}
}

// Transcript renders the canonical order text:
//
//	Customer: <name> (<phone>)
//	Order:
//	- <product> x <qty> = ₹<subtotal>
//
//	Total = ₹<total>
//
// Identical input always produces byte-identical output. This exact
// string is what the QR code consumer receives inside the channel
// address.
func (f *Formatter) Transcript(customer domain.CustomerInfo, items []domain.LineItem, total decimal.Decimal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Customer: %s (%s)\nOrder:\n", customer.Name, customer.Phone)
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x %d = %s%s\n", item.Product, item.Quantity, currencySymbol, FormatAmount(item.Subtotal))
	}
	fmt.Fprintf(&b, "\nTotal = %s%s", currencySymbol, FormatAmount(total))

	return b.String()
}

// ChannelAddress builds the wa.me URI with the percent-encoded
// transcript as the text parameter. Byte-stable for identical input.
func (f *Formatter) ChannelAddress(transcript string) string {
	return fmt.Sprintf("%s/%s?text=%s", f.baseURL, f.recipient, encodeText(transcript))
}

// encodeText percent-encodes a transcript for the text query parameter.
// Spaces become %20 rather than +, keeping the address byte-compatible
// with links produced by urllib-style quoting.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FormatAmount renders a money amount with trailing fractional zeros
// trimmed: 20.00 prints as 20, 12.50 as 12.5. Currency values in this
// system are never negative.
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
