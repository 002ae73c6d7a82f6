package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)

	decoded, err := DecodeCursor(EncodeCursor(at))
	require.NoError(t, err)
	assert.True(t, at.Equal(decoded))
}

func TestDecodeCursorEmptyMeansFirstPage(t *testing.T) {
	decoded, err := DecodeCursor("")
	require.NoError(t, err)
	assert.True(t, decoded.IsZero())
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, err := DecodeCursor("%%%not-base64%%%")
	assert.Error(t, err)

	// valid base64, invalid timestamp
	_, err = DecodeCursor("aGVsbG8=")
	assert.Error(t, err)
}

func TestPageVerifyClamps(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{-3, 1},
		{0, 1},
		{25, 25},
		{50, 50},
		{51, 50},
	}
	for _, tc := range cases {
		num := tc.in
		PageVerify(&num)
		assert.Equal(t, tc.want, num, "input %d", tc.in)
	}
}
