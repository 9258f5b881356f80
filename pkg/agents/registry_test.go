package agents

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	registry, err := NewRegistry(context.Background(), WithDefinitionDirs(t.TempDir()))
	require.NoError(t, err)

	defs := registry.List()
	require.Len(t, defs, 3)

	// Sorted by name
	assert.Equal(t, "code", defs[0].Name)
	assert.Equal(t, "explore", defs[1].Name)
	assert.Equal(t, "plan", defs[2].Name)

	plan, ok := registry.Get("plan")
	require.True(t, ok)
	assert.NotContains(t, plan.Tools, "write_file", "plan agent is read-only")
	assert.NotContains(t, plan.Tools, "edit_file", "plan agent is read-only")

	code, ok := registry.Get("code")
	require.True(t, ok)
	assert.Contains(t, code.Tools, "write_file")
	assert.Contains(t, code.Tools, "edit_file")
}

func TestRegistryBuiltinInstructions(t *testing.T) {
	registry, err := NewRegistry(context.Background(), WithDefinitionDirs(t.TempDir()))
	require.NoError(t, err)

	for _, name := range []string{"plan", "code", "explore"} {
		def, ok := registry.Get(name)
		require.True(t, ok, name)

		rendered, err := def.RenderInstructions("/workspace/app")
		require.NoError(t, err, name)
		assert.Contains(t, rendered, "/workspace/app")
	}
}

func TestRegistryOverrides(t *testing.T) {
	userDir := t.TempDir()
	projectDir := t.TempDir()

	userOverride := `name: plan
description: User-level planning agent
tools: [ls, read_file]
instructions: User instructions.
`
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "plan.yaml"), []byte(userOverride), 0o644))

	projectOverride := `name: plan
description: Project-level planning agent
tools: [ls, read_file, grep]
instructions: Project instructions.
`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "plan.yaml"), []byte(projectOverride), 0o644))

	registry, err := NewRegistry(context.Background(), WithDefinitionDirs(userDir, projectDir))
	require.NoError(t, err)

	plan, ok := registry.Get("plan")
	require.True(t, ok)
	assert.Equal(t, "Project-level planning agent", plan.Description, "later directory wins")

	// Built-ins not overridden survive
	_, ok = registry.Get("code")
	assert.True(t, ok)
}

func TestRegistrySkipsInvalidOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"),
		[]byte("name: broken\ndescription: missing tools and instructions\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"),
		[]byte("not an agent definition"), 0o644))

	registry, err := NewRegistry(context.Background(), WithDefinitionDirs(dir))
	require.NoError(t, err)

	_, ok := registry.Get("broken")
	assert.False(t, ok)
	assert.Len(t, registry.List(), 3, "only built-ins remain")
}

func TestRegistryMissingOverrideDirs(t *testing.T) {
	registry, err := NewRegistry(context.Background(),
		WithDefinitionDirs("/non/existent/user", "/non/existent/project"))
	require.NoError(t, err)
	assert.Len(t, registry.List(), 3)
}
