package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressKey(t *testing.T) {
	assert.Equal(t, "42-act123-key", progressKey("42", "act123"))
}

func TestRedisSink_NextMidnight(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		t.Skip("tzdata indisponível")
	}

	tests := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name:     "Meio do dia expira na meia-noite seguinte",
			now:      time.Date(2024, 6, 1, 15, 30, 0, 0, manila),
			expected: time.Date(2024, 6, 2, 0, 0, 0, 0, manila),
		},
		{
			name:     "Um minuto antes da virada expira na meia-noite seguinte",
			now:      time.Date(2024, 6, 1, 23, 59, 0, 0, manila),
			expected: time.Date(2024, 6, 2, 0, 0, 0, 0, manila),
		},
		{
			name:     "Virada de mês",
			now:      time.Date(2024, 6, 30, 12, 0, 0, 0, manila),
			expected: time.Date(2024, 7, 1, 0, 0, 0, 0, manila),
		},
		{
			name:     "O fuso do negócio define a meia-noite, não o UTC",
			now:      time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC), // 01:00 do dia 2 em Manila
			expected: time.Date(2024, 6, 3, 0, 0, 0, 0, manila),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &RedisSink{location: manila, now: func() time.Time { return tt.now }}
			assert.True(t, tt.expected.Equal(sink.nextMidnight()))
		})
	}
}
