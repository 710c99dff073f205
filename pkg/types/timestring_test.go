package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Canonical(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		want    TimeString
		wantErr bool
	}{
		{name: "already canonical", input: "09:00", want: "09:00"},
		{name: "legacy single digit hour", input: "9:00", want: "09:00"},
		{name: "legacy single digit minute", input: "9:5", want: "09:05"},
		{name: "midnight", input: "0:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "empty string", input: "", wantErr: true},
		{name: "no colon", input: "0900", wantErr: true},
		{name: "too many parts", input: "09:00:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "09:60", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Canonical()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	got, err := NewTimeStringFromString("9:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	_, err = NewTimeStringFromString("half past nine")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "simple shift", input: "09:00", minutes: 30, want: "09:30"},
		{name: "hour rollover", input: "09:45", minutes: 30, want: "10:15"},
		{name: "legacy input is canonicalized", input: "9:00", minutes: 30, want: "09:30"},
		{name: "last slot end", input: "19:30", minutes: 30, want: "20:00"},
		{name: "crossing midnight", input: "23:45", minutes: 30, wantErr: true},
		{name: "invalid input", input: "garbage", minutes: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("19:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
