package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:00")
	require.NoError(t, err)
	assert.Equal(t, "14:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("14:60")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("noon")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString_DropsDate(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 9, 7, 5, 30, 0, time.UTC))
	assert.Equal(t, "07:05", ts.String())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("14:00")

	shifted, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "15:00", shifted.String())

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("07:00").IsBefore("20:00"))
	assert.True(t, TimeString("20:00").IsAfter("07:00"))
	assert.False(t, TimeString("14:00").IsBefore("14:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("07:00").IsZero())
}
