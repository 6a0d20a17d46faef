package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotlayout/dotlayout/style"
)

func TestResolveColor(t *testing.T) {
	t.Parallel()

	c, ok := style.ResolveColor("red")
	assert.True(t, ok)
	assert.Equal(t, style.RGBA(255, 0, 0, 255), c)

	c, ok = style.ResolveColor("transparent")
	assert.True(t, ok)
	assert.Equal(t, style.White(), c)

	c, ok = style.ResolveColor("red:blue")
	assert.True(t, ok)
	assert.Equal(t, style.RGBA(255, 0, 0, 255), c)

	_, ok = style.ResolveColor("not-a-color")
	assert.False(t, ok)
}

func TestToWebColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0000", style.RGBA(255, 0, 0, 255).ToWebColor())
	assert.Equal(t, "transparent", style.Transparent().ToWebColor())
}
