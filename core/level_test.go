package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{NotSetLevel, "NOTSET"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{Level(-1), "Level(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestLevel_Valid(t *testing.T) {
	for _, l := range Levels() {
		assert.True(t, l.Valid(), l.String())
		assert.NoError(t, ValidateLevel(l))
	}

	for _, l := range []Level{-1, 1, 15, 25, 60, 100} {
		assert.False(t, l.Valid())
		assert.ErrorIs(t, ValidateLevel(l), ErrInvalidLevel)
	}
}

func TestLevel_Ordering(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"notset", NotSetLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"Warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"CRITICAL", CriticalLevel},
		{"fatal", CriticalLevel},
		{" 30 ", WarnLevel},
		{"0", NotSetLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"", "TRACE", "15", "-1", "verbose"} {
		_, err := ParseLevel(in)
		assert.ErrorIs(t, err, ErrInvalidLevel, in)
	}
}
