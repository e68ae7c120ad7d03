package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid morning", value: "09:00", wantErr: false},
		{name: "valid afternoon", value: "17:30", wantErr: false},
		{name: "valid midnight", value: "00:00", wantErr: false},
		{name: "valid last minute", value: "23:59", wantErr: false},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "12:60", wantErr: true},
		{name: "single digit hour", value: "9:00", wantErr: true},
		{name: "missing colon", value: "0900", wantErr: true},
		{name: "letters", value: "ab:cd", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "trailing garbage", value: "09:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("09:30"), NewTimeString(moment))
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := TimeString("17:30")
	assert.Equal(t, 17, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	// Невалидное значение деградирует в ноль
	bad := TimeString("garbage")
	assert.Equal(t, 0, bad.Hour())
	assert.Equal(t, 0, bad.Minute())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	// Переход через полночь запрещен
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:10").AddMinutes(-30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("17:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
