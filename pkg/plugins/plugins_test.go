package plugins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/types"
)

func TestBuiltinPluginsRegistered(t *testing.T) {
	algorithm.Restrict(nil)
	schemes := algorithm.Schemes()

	codes := make(map[string]algorithm.Meta, len(schemes))
	for _, meta := range schemes {
		codes[meta.Code] = meta
	}

	for _, expected := range []string{
		"SCM-WF01", "SCM-WF02", "SCM-WF03",
		"STM-WF01", "STM-WF02", "STM-WF03",
		"DEMO01_WF01",
	} {
		assert.Contains(t, codes, expected)
	}

	assert.Equal(t, types.ResourceGPU, codes["SCM-WF01"].ResourceType)
	assert.Equal(t, types.ResourceGPU, codes["DEMO01_WF01"].ResourceType)
	assert.Equal(t, types.ResourceCPU, codes["SCM-WF02"].ResourceType)
}

func TestAllSchemesHaveCompleteMeta(t *testing.T) {
	algorithm.Restrict(nil)
	for _, meta := range algorithm.Schemes() {
		assert.NoError(t, meta.Validate())
		assert.NotEmpty(t, meta.ClassName, "scheme %s missing class name", meta.Code)
		assert.NotEmpty(t, meta.Model, "scheme %s missing model", meta.Code)
	}
}

func TestModelDerivedFromPluginPath(t *testing.T) {
	algorithm.Restrict(nil)
	for _, meta := range algorithm.Schemes() {
		switch meta.Code {
		case "SCM-WF02":
			assert.Equal(t, "scm-wf02", meta.Model)
		case "STM-WF01":
			assert.Equal(t, "stm-wf01", meta.Model)
		case "DEMO01_WF01":
			assert.Equal(t, "m01-safety_check", meta.Model)
		}
	}
}

func TestManifestRestrictsSchemes(t *testing.T) {
	t.Cleanup(func() { algorithm.Restrict(nil) })

	path := filepath.Join(t.TempDir(), "manifest")
	require.NoError(t, os.WriteFile(path, []byte("# enabled schemes\nSCM-WF02\n\nSTM-WF01\n"), 0o644))

	require.NoError(t, Load(path))
	assert.NotNil(t, algorithm.Get("SCM-WF02"))
	assert.NotNil(t, algorithm.Get("STM-WF01"))
	assert.Nil(t, algorithm.Get("SCM-WF03"))
	assert.Len(t, algorithm.Schemes(), 2)
}

func TestLoadMissingManifest(t *testing.T) {
	assert.Error(t, Load(filepath.Join(t.TempDir(), "absent")))
}

func TestLoadEmptyPathIsNoop(t *testing.T) {
	algorithm.Restrict(nil)
	require.NoError(t, Load(""))
	assert.NotEmpty(t, algorithm.Schemes())
}
