package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	defer appLocation.Store(nil)

	assert.Equal(t, time.UTC, GetLocation())

	loc := Load("Asia/Jakarta")
	assert.Equal(t, "Asia/Jakarta", loc.String())
	assert.Equal(t, loc, GetLocation())
	assert.Equal(t, loc, Now().Location())

	assert.Equal(t, time.UTC, Load("Not/AZone"))
	assert.Equal(t, time.UTC, GetLocation())

	assert.Equal(t, time.UTC, Load(""))
}

func TestFormatAndParse(t *testing.T) {
	defer appLocation.Store(nil)
	Load("Asia/Jakarta")

	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01 19:00", Format(ts, "2006-01-02 15:04"))

	parsed, err := Parse("2006-01-02 15:04", "2024-01-01 19:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}
