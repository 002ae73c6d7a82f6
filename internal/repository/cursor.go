package repository

import (
	"encoding/base64"
	"time"
)

const (
	timeFormat = time.RFC3339Nano

	pageMin = 1
	pageMax = 50
)

// EncodeCursor will encode the last row's timestamp into an opaque page cursor
func EncodeCursor(t time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(t.Format(timeFormat)))
}

// DecodeCursor will decode a page cursor back into a timestamp.
// An empty cursor decodes to the zero time, meaning "first page".
func DecodeCursor(encoded string) (time.Time, error) {
	if encoded == "" {
		return time.Time{}, nil
	}
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(timeFormat, string(b))
}

// PageVerify clamps the requested page size into the allowed range
func PageVerify(num *int64) {
	if *num < pageMin {
		*num = pageMin
	}
	if *num > pageMax {
		*num = pageMax
	}
}
