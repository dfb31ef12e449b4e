package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slimblog/newpost/internal/entry"
)

func TestEntryFlags_Options(t *testing.T) {
	var ef EntryFlags
	cmd := &cobra.Command{Use: "test"}
	ef.AddTo(cmd)

	require.NoError(t, cmd.ParseFlags([]string{
		"--tags", "go,cli", "-c", "life", "-s", "my-slug", "-D",
		"-T", "link", "-d", "12:00:00", "-w", "https://example.com", "-p", "out",
	}))

	dirs := entry.Dirs{Posts: "p", Bookmarks: "b", Slides: "s"}
	opts := ef.Options([]string{"A", "Title"}, dirs)

	assert.Equal(t, entry.Options{
		Args:     []string{"A", "Title"},
		Tags:     "go,cli",
		Category: "life",
		Slug:     "my-slug",
		Draft:    true,
		Template: "link",
		Datetime: "12:00:00",
		Website:  "https://example.com",
		Path:     "out",
		Defaults: dirs,
	}, opts)
}

func TestGlobalFlags_VerboseCounts(t *testing.T) {
	var gf GlobalFlags
	cmd := &cobra.Command{Use: "test"}
	gf.AddTo(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"-vv", "--dry-run", "--config", "/tmp/c.yaml"}))

	assert.Equal(t, 2, gf.Verbose)
	assert.True(t, gf.DryRun)
	assert.False(t, gf.ListTemplates)
	assert.Equal(t, "/tmp/c.yaml", gf.Config)
}

func TestFlagHelpListsChoices(t *testing.T) {
	for _, k := range entry.Kinds() {
		assert.True(t, strings.Contains(kindNames(), string(k)), k)
	}
	assert.Equal(t, "coding/life/tools/bookmark/slides", categoryNames())
}
