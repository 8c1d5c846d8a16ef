package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_sorted(t *testing.T) {
	assert.Equal(t, []string{"flat", "gruvbox", "tokyo-night"}, ThemeNames())
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.NotNil(t, p.Success)

	_, ok = GetPalette("nope")
	assert.False(t, ok)
}

func TestSetTheme_updatesColors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	flat, _ := GetPalette("flat")
	SetTheme(flat)

	assert.Equal(t, flat.Success, ColorSuccess)
	assert.Equal(t, flat.Error, ColorError)
	assert.Equal(t, flat, CurrentPalette)
}
