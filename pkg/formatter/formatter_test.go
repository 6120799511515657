package formatter_test

import (
	"testing"

	"github.com/orgball2608/apod-telegram-bot/pkg/formatter"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, formatter.FormatNumber(tc.in), "input %d", tc.in)
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "Three Tails of Comet NEOWISE",
			want: "Three Tails of Comet NEOWISE",
		},
		{
			name: "reserved characters escaped",
			in:   "M31: The Andromeda Galaxy (HD!)",
			want: "M31: The Andromeda Galaxy \\(HD\\!\\)",
		},
		{
			name: "date dashes escaped",
			in:   "2021-03-08",
			want: "2021\\-03\\-08",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatter.EscapeMarkdownV2(tc.in))
		})
	}
}
