package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 15, 19, 30, 45, 0, time.UTC))
	assert.Equal(t, "19:30", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	_, err = NewTimeStringFromString("9:05")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("12:60")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromMinutes(0))
	assert.Equal(t, TimeString("10:30"), NewTimeStringFromMinutes(630))
	assert.Equal(t, TimeString("23:59"), NewTimeStringFromMinutes(1439))

	// Значение нормализуется по модулю суток
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromMinutes(1440))
	assert.Equal(t, TimeString("01:00"), NewTimeStringFromMinutes(1500))
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 1140, TimeString("19:00").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.True(t, TimeString("13:00").IsAfter("12:59"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("19:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:30"), ts)

	// 24:00 нормализуется в 00:00
	ts, err = TimeString("22:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	// Выход за пределы суток
	_, err = TimeString("23:00").AddMinutes(120)
	assert.Error(t, err)

	_, err = TimeString("01:00").AddMinutes(-120)
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("18:45"))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan([]byte("07:15")))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 11, 20, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:20"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
