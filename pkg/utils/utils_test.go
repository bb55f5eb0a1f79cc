package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode("CH-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "CH-"))
	assert.Len(t, code, 9)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.33, Percent(1.0/3.0))
	assert.Equal(t, 0.0, Percent(0))
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 24, 0, 0, 0, 0, time.UTC), DaysAgo(now, 7))
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
}
