package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvironmentVariables(t *testing.T) {
	t.Setenv("TRAINFINDER_TEST_KEY", "value=with=equals")
	t.Setenv("OTHER_TEST_KEY", "ignored")

	env := GetEnvironmentVariables("TRAINFINDER_TEST_")

	assert.Equal(t, map[string]string{"TRAINFINDER_TEST_KEY": "value=with=equals"}, env)
}

func TestAddTimeToDate(t *testing.T) {
	day := time.Date(2020, 4, 5, 13, 7, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2020, 4, 5, 5, 40, 0, 0, time.UTC), AddTimeToDate(day, 5*time.Hour+40*time.Minute))
}

func TestTrimString(t *testing.T) {
	assert.Equal(t, "short", TrimString("short", 10))
	assert.Equal(t, "too l...", TrimString("too long", 5))
}

func TestContainsStringFold(t *testing.T) {
	match, ok := ContainsStringFold([]string{"London", "Paris"}, "paRIS")
	assert.True(t, ok)
	assert.Equal(t, "Paris", match)

	_, ok = ContainsStringFold([]string{"London"}, "Lille")
	assert.False(t, ok)
}
