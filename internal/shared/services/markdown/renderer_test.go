package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	t.Run("blank input", func(t *testing.T) {
		out, err := r.Render("   ")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("emphasis and lists", func(t *testing.T) {
		out, err := r.Render("Targets are **too low**.\n\n- raise Q2\n- split activity")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>too low</strong>")
		assert.Contains(t, out, "<li>raise Q2</li>")
	})

	t.Run("scripts are stripped", func(t *testing.T) {
		out, err := r.Render("ok <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "ok")
	})
}
