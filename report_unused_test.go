package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUnused(t *testing.T) {
	files := map[string]string{
		"src/lang/en.json": `{"used": "U", "attr.used": "A", "never": "N", "also.never": "N"}`,
		"src/a.vue":        "$t('used')\n<i18n-t keypath=\"attr.used\">\n$t('not.in.catalog')\n",
	}

	t.Run("text", func(t *testing.T) {
		p, out := newTestProject(t, files)
		require.NoError(t, runUnused(p))
		assert.Equal(t, "Found 2 unused keys:\n  also.never\n  never\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		p, out := newTestProject(t, files)
		p.cfg.Format = "json"
		require.NoError(t, runUnused(p))

		var got []string
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, []string{"also.never", "never"}, got)
	})

	t.Run("none", func(t *testing.T) {
		p, out := newTestProject(t, map[string]string{
			"src/lang/en.json": `{"used": "U"}`,
			"src/a.js":         "$t(\"used\")\n",
		})
		require.NoError(t, runUnused(p))
		assert.Equal(t, "No unused keys found.\n", out.String())
	})
}
