package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/oagen/pkg/design"
	"github.com/Davincible/oagen/pkg/random"
)

func TestValidateFamily(t *testing.T) {
	f, err := ValidateFamily("  AK3 ")
	require.NoError(t, err)
	assert.Equal(t, design.AddelKemp3, f)

	_, err = ValidateFamily("")
	assert.Error(t, err)

	_, err = ValidateFamily("latin")
	assert.ErrorIs(t, err, design.ErrUnknownFamily)
	assert.Contains(t, err.Error(), "bosebush")
}

func TestValidateLevels(t *testing.T) {
	tests := []struct {
		q, max int
		ok     bool
	}{
		{q: 2, ok: true},
		{q: 9, ok: true},
		{q: 49, max: 64, ok: true},
		{q: 1},
		{q: 6},
		{q: 128, max: 64},
	}
	for _, tt := range tests {
		err := ValidateLevels(tt.q, tt.max)
		if tt.ok {
			assert.NoError(t, err, "q=%d", tt.q)
		} else {
			assert.Error(t, err, "q=%d", tt.q)
		}
	}
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed("12,34,56,78")
	require.NoError(t, err)
	assert.Equal(t, random.DefaultSeed, seed)

	seed, err = ParseSeed(" 1 2, 3  4 ")
	require.NoError(t, err)
	assert.Equal(t, random.Seed{1, 2, 3, 4}, seed)

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5", "a,b,c,d", "-1,2,3,4"} {
		_, err := ParseSeed(bad)
		assert.Error(t, err, bad)
	}

	_, err = ParseSeed("1,1,1,1")
	assert.ErrorIs(t, err, random.ErrInvalidSeed)
	_, err = ParseSeed("1,2,3,169")
	assert.ErrorIs(t, err, random.ErrInvalidSeed)
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat("table"))
	assert.NoError(t, ValidateOutputFormat("JSON"))
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestColumnsAndStrength(t *testing.T) {
	assert.NoError(t, ValidateColumns(0))
	assert.Error(t, ValidateColumns(-1))
	assert.NoError(t, ValidateStrength(3))
	assert.Error(t, ValidateStrength(-2))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "a\nb\nc", SanitizeInput("  a \r\n b\r c  "))
}
