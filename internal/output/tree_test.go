package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFragmentTree(t *testing.T) {
	t.Run("empty entries render nothing", func(t *testing.T) {
		assert.Empty(t, RenderFragmentTree("payloads", nil))
	})

	t.Run("directories sort before files", func(t *testing.T) {
		out := RenderFragmentTree("payloads", map[string]string{
			"zeta.yaml":      "",
			"users/get.yaml": "",
		})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Contains(t, lines[0], "payloads/")
		assert.Contains(t, lines[1], "users/")
		assert.Contains(t, lines[2], "get.yaml")
		assert.Contains(t, lines[3], "zeta.yaml")
	})

	t.Run("labels align after the name", func(t *testing.T) {
		out := RenderFragmentTree("payloads", map[string]string{
			"fixture.json": "SHARED",
		})

		assert.Contains(t, out, "fixture.json")
		assert.Contains(t, out, "SHARED")
	})

	t.Run("last sibling uses the closing connector", func(t *testing.T) {
		out := RenderFragmentTree("payloads", map[string]string{
			"a.yaml": "",
			"b.yaml": "",
		})

		assert.Contains(t, out, "├── a.yaml")
		assert.Contains(t, out, "└── b.yaml")
	})
}
