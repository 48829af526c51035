package theme

import (
	"testing"

	"github.com/phyten/termtheme/internal/colorutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExtremes(t *testing.T) {
	assert.Equal(t, Dark, Classify(colorutil.RGB{R: 0, G: 0, B: 0}))
	assert.Equal(t, Light, Classify(colorutil.RGB{R: 255, G: 255, B: 255}))
	assert.Equal(t, Dark, Classify(colorutil.RGB{R: 16, G: 16, B: 16}))
	assert.Equal(t, Light, Classify(colorutil.RGB{R: 253, G: 246, B: 227}))
	assert.Equal(t, Dark, Classify(colorutil.RGB{R: 0, G: 43, B: 54}))
}

func TestClassifyBoundaryIsLight(t *testing.T) {
	// Each of these has a Rec. 709 luma of exactly one half; some of them
	// evaluate to 0.49999999999999994 in floating point.
	ties := []colorutil.RGB{
		{R: 47, G: 143, B: 211},
		{R: 61, G: 156, B: 41},
		{R: 13, G: 163, B: 113},
		{R: 30, G: 153, B: 162},
		{R: 78, G: 146, B: 90},
	}
	for _, c := range ties {
		require.Equal(t, colorutil.Luma709Scale, 2*colorutil.Luma709Scaled(c), "%v is not a tie", c)
		assert.Equal(t, Light, Classify(c), "%v", c)
	}
	// One step below the tie is dark.
	assert.Equal(t, Dark, Classify(colorutil.RGB{R: 47, G: 143, B: 210}))
}

func TestClassifyAgreesWithFloatLuma(t *testing.T) {
	for v := 0; v < 256; v += 3 {
		c := colorutil.RGB{R: uint8(v), G: uint8((v * 5) % 256), B: uint8(255 - v)}
		l := colorutil.Luma709(c)
		if l > 0.5+1e-9 {
			assert.Equal(t, Light, Classify(c), "%v luma=%v", c, l)
		}
		if l < 0.5-1e-9 {
			assert.Equal(t, Dark, Classify(c), "%v luma=%v", c, l)
		}
	}
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("Dark")
	assert.True(t, ok)
	assert.Equal(t, Dark, m)

	m, ok = ParseMode("prefer-light")
	assert.True(t, ok)
	assert.Equal(t, Light, m)

	_, ok = ParseMode("auto")
	assert.False(t, ok)
}

func TestAnswers(t *testing.T) {
	a := Found(colorutil.RGB{R: 16, G: 16, B: 16})
	require.True(t, a.OK())
	assert.Equal(t, Dark, a.Mode())
	c, ok := a.Sample()
	require.True(t, ok)
	assert.Equal(t, colorutil.RGB{R: 16, G: 16, B: 16}, c)
	assert.Equal(t, "dark #101010", a.String())

	p := Prefer(Light)
	require.True(t, p.OK())
	_, ok = p.Sample()
	assert.False(t, ok)
	assert.Equal(t, "light", p.String())

	n := NotAvailable()
	assert.False(t, n.OK())
	assert.Equal(t, "n/a", n.String())
}

func TestResultBackground(t *testing.T) {
	r := Found(colorutil.RGB{R: 0, G: 43, B: 54}).result(SourceGnomeTerminal)
	assert.Equal(t, "#002b36", r.Background())
	assert.Equal(t, SourceGnomeTerminal, r.Source)

	r = Prefer(Light).result(SourcePortal)
	assert.Nil(t, r.Sample)
	assert.Equal(t, "n/a", r.Background())
}
