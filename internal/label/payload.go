package label

import "strings"

const boxPathSegment = "/box/"

// QRPayload is the URL every renderer encodes into the QR code. The scan
// flow resolves the same shape, so it must not change.
func QRPayload(baseURL, shortCode string) string {
	return strings.TrimRight(baseURL, "/") + boxPathSegment + shortCode
}

// ShortCodeFromScan extracts the short code from a scanned value, which is
// either a full QR payload or a code typed by hand.
func ShortCodeFromScan(value string) string {
	value = strings.TrimSpace(value)
	if i := strings.LastIndex(value, boxPathSegment); i >= 0 {
		value = value[i+len(boxPathSegment):]
	}
	return strings.TrimSpace(value)
}
