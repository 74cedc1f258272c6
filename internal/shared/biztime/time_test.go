package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2024-07-08")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, "2024-07-08", FormatDate(parsed))
	assert.Equal(t, 2024, FiscalYearOf(parsed))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("08/07/2024")
	assert.Error(t, err)
}
