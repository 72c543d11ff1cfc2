package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	assert.Equal(t, 1, Step(StatusProcessing))
	assert.Equal(t, 2, Step(StatusShipped))
	assert.Equal(t, 3, Step(StatusDelivered))
	assert.Equal(t, 0, Step("Cancelled"))
	assert.Equal(t, 0, Step(""))
}

func TestSteps(t *testing.T) {
	rows := Steps(StatusShipped)
	require.Len(t, rows, 3)

	assert.True(t, rows[0].Completed)
	assert.False(t, rows[0].Current)
	assert.True(t, rows[1].Completed)
	assert.True(t, rows[1].Current)
	assert.False(t, rows[2].Completed)

	for _, r := range Steps("unknown") {
		assert.False(t, r.Completed)
		assert.False(t, r.Current)
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(StatusProcessing))
	assert.Equal(t, 50, Progress(StatusShipped))
	assert.Equal(t, 100, Progress(StatusDelivered))
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, st)

	_, err = ParseStatus("lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusDelivered, true},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusProcessing, false},
		{StatusDelivered, StatusShipped, false},
		{StatusDelivered, StatusDelivered, false},
		{StatusProcessing, StatusProcessing, false},
		{"", StatusProcessing, true},
		{StatusProcessing, "Cancelled", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
	assert.True(t, Terminal(StatusDelivered))
	assert.False(t, Terminal(StatusShipped))
}
