package domain_test

import (
	"testing"
	"time"

	"github.com/orgball2608/apod-telegram-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := domain.ParseDate("2021-03-08")
	require.NoError(t, err)
	assert.Equal(t, "2021-03-08", date.String())
	assert.Equal(t, domain.NewDate(2021, time.March, 8), date)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "garbage", "2021-13-40", "08-03-2021", "2021/03/08"} {
		_, err := domain.ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero domain.Date
	assert.True(t, zero.IsZero())

	date, err := domain.ParseDate("2024-04-19")
	require.NoError(t, err)
	assert.False(t, date.IsZero())
}
