package skills

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixture(t *testing.T) (*Snapshot, string) {
	t.Helper()
	root := t.TempDir()

	writeSkill(t, root, "web-search", "web-search", "Search the web")
	writeSkill(t, root, "code-review", "code-review", "Review code")
	writeSkill(t, root, "web-scrape", "web-scrape", "Scrape web pages")

	discovery, err := NewDiscovery(WithRoots(Root{Dir: root, Source: SourceUser}))
	require.NoError(t, err)

	return discovery.Scan(context.Background()), root
}

func TestSummariesProjection(t *testing.T) {
	snapshot, _ := scanFixture(t)

	summaries := snapshot.Summaries()
	require.Len(t, summaries, 3)

	// Sorted by name; only name and description are exposed
	assert.Equal(t, Summary{Name: "code-review", Description: "Review code"}, summaries[0])
	assert.Equal(t, Summary{Name: "web-scrape", Description: "Scrape web pages"}, summaries[1])
	assert.Equal(t, Summary{Name: "web-search", Description: "Search the web"}, summaries[2])
}

func TestLoadBody(t *testing.T) {
	snapshot, _ := scanFixture(t)

	body, err := snapshot.LoadBody("web-search")
	require.NoError(t, err)
	assert.Contains(t, body, "# web-search")
	assert.Contains(t, body, "Instructions for web-search.")
	assert.NotContains(t, body, "---", "frontmatter must be stripped")

	_, err = snapshot.LoadBody("unknown")
	assert.Error(t, err)
}

func TestLoadFull(t *testing.T) {
	snapshot, _ := scanFixture(t)

	content, err := snapshot.LoadFull("code-review")
	require.NoError(t, err)
	assert.Contains(t, content, "name: code-review")
	assert.Contains(t, content, "Instructions for code-review.")
}

func TestLoadFullMissingFile(t *testing.T) {
	snapshot, root := scanFixture(t)

	// A definition file removed after the scan surfaces as AccessError
	require.NoError(t, os.Remove(filepath.Join(root, "web-search", "SKILL.md")))

	_, err := snapshot.LoadFull("web-search")
	require.Error(t, err)

	var accessErr *AccessError
	assert.ErrorAs(t, err, &accessErr)
}

func TestRenderFull(t *testing.T) {
	root := t.TempDir()
	skillDir := writeSkill(t, root, "with-resources", "with-resources", "Skill with supporting files")

	require.NoError(t, os.MkdirAll(filepath.Join(skillDir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "scripts", "run.sh"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(skillDir, "references"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "references", "guide.md"), []byte("# Guide\n"), 0o644))

	discovery, err := NewDiscovery(WithRoots(Root{Dir: root, Source: SourceProject}))
	require.NoError(t, err)
	snapshot := discovery.Scan(context.Background())

	rendered, err := snapshot.RenderFull("with-resources")
	require.NoError(t, err)
	assert.Contains(t, rendered, "# Skill: with-resources")
	assert.Contains(t, rendered, "Instructions for with-resources.")
	assert.Contains(t, rendered, "scripts: run.sh")
	assert.Contains(t, rendered, "references: guide.md")
}

func TestListResources(t *testing.T) {
	root := t.TempDir()
	skillDir := writeSkill(t, root, "tooling", "tooling", "Skill with scripts")
	require.NoError(t, os.MkdirAll(filepath.Join(skillDir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "scripts", "build.sh"), []byte("#!/bin/sh\n"), 0o755))

	discovery, err := NewDiscovery(WithRoots(Root{Dir: root, Source: SourceUser}))
	require.NoError(t, err)
	snapshot := discovery.Scan(context.Background())

	resources, err := snapshot.ListResources("tooling")
	require.NoError(t, err)
	assert.Equal(t, []string{"build.sh"}, resources["scripts"])

	_, err = snapshot.ListResources("unknown")
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	snapshot, _ := scanFixture(t)

	t.Run("empty allowlist keeps everything", func(t *testing.T) {
		assert.Equal(t, 3, snapshot.Filter(nil).Len())
	})

	t.Run("glob patterns", func(t *testing.T) {
		filtered := snapshot.Filter([]string{"web-*"})
		assert.Equal(t, 2, filtered.Len())
		_, ok := filtered.Get("code-review")
		assert.False(t, ok)
	})

	t.Run("exact names", func(t *testing.T) {
		filtered := snapshot.Filter([]string{"code-review"})
		require.Equal(t, 1, filtered.Len())
		_, ok := filtered.Get("code-review")
		assert.True(t, ok)
	})

	t.Run("unknown names are ignored", func(t *testing.T) {
		filtered := snapshot.Filter([]string{"code-review", "nonexistent"})
		assert.Equal(t, 1, filtered.Len())
	})
}
