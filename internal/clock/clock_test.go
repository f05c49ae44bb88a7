package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemNow(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixedNow(t *testing.T) {
	instant := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	c := Fixed{T: instant}

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now())
}
