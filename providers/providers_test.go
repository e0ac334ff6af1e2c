package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIDate(t *testing.T) {
	now := time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-02-05", APIDate("05/02/2026 02:10", now))
	assert.Equal(t, "2026-02-05", APIDate("5/2/2026", now))
	assert.Equal(t, "2026-12-31", APIDate("31/12/2026 23:59", now))

	// Anything else defaults to today.
	assert.Equal(t, "2026-02-10", APIDate("", now))
	assert.Equal(t, "2026-02-10", APIDate("tomorrow", now))
	assert.Equal(t, "2026-02-10", APIDate("2026-02-05", now))
	assert.Equal(t, "2026-02-10", APIDate("aa/bb/cccc", now))
}
