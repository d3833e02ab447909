package scan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDir.String())
}

func TestEntry_JSON(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		b, err := json.Marshal(Entry{
			Path:     "/d/a.txt",
			Name:     "a.txt",
			Size:     100,
			Kind:     KindFile,
			Category: CategoryDocument,
		})
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"path": "/d/a.txt",
			"name": "a.txt",
			"size": 100,
			"kind": "file",
			"category": "document"
		}`, string(b))
	})

	t.Run("directory_has_no_category", func(t *testing.T) {
		b, err := json.Marshal(Entry{Path: "/d/sub", Name: "sub", Kind: KindDir})
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"path": "/d/sub",
			"name": "sub",
			"size": 0,
			"kind": "directory"
		}`, string(b))
	})
}
