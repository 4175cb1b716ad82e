package checkout

import (
	qrcode "github.com/skip2/go-qrcode"

	apperrors "babashop/internal/errors"
)

// EncodeQR renders the channel address into a size x size PNG. The
// payload is the full address, not the raw transcript, so scanning the
// code opens the same pre-filled message as clicking the link.
func EncodeQR(payload string, size int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, apperrors.NewInternalError("encoding order QR code", err)
	}
	return png, nil
}
