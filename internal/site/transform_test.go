package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"git.home.luguber.info/inful/docsite/internal/config"
)

func TestWrapMarkdown(t *testing.T) {
	got := WrapMarkdown("b.ini", "ini", []byte("[core]\nkey=value"))
	assert.Equal(t, "# b.ini\n```ini\n[core]\nkey=value\n```", string(got))

	got = WrapMarkdown("notes.txt", "", []byte("hello"))
	assert.Equal(t, "# notes.txt\n```\nhello\n```", string(got), "empty tag leaves no trailing space")
}

func TestTransformToMarkdown(t *testing.T) {
	dir := t.TempDir()
	c := NewClassifier(config.DefaultClassification)

	cases := []struct {
		file    string
		content string
		want    string
	}{
		{"config.INI", "a=1", "# config.INI\n```ini\na=1\n```"},
		{"page.vm", "#set($x = 1)", "# page.vm\n```velocity\n#set($x = 1)\n```"},
		{"~build.gradle", "apply plugin", "# build.gradle\n```\napply plugin\n```"},
		{"~layout.xml", "<a/>", "# layout.xml\n```xml\n<a/>\n```"},
		{"readme.txt", "", "# readme.txt\n```\n\n```"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			got, err := TransformToMarkdown(path, c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestTransformToMarkdownVanishedFileIsEmpty(t *testing.T) {
	c := NewClassifier(config.DefaultClassification)
	got, err := TransformToMarkdown(filepath.Join(t.TempDir(), "gone.ini"), c)
	require.NoError(t, err)
	assert.Equal(t, "# gone.ini\n```ini\n\n```", string(got))
}

func TestTransformToMarkdownProperties(t *testing.T) {
	c := NewClassifier(config.DefaultClassification)
	dir := t.TempDir()

	rapid.Check(t, func(t *rapid.T) {
		rule := rapid.SampledFrom(config.DefaultClassification).Draw(t, "rule")
		forced := rapid.Bool().Draw(t, "forced")
		base := rapid.StringMatching(`[a-z][a-z0-9\-]{0,10}`).Draw(t, "base")
		content := rapid.StringMatching("[^`]{0,64}").Draw(t, "content")

		name := base + "." + rule.Extension
		if forced {
			name = ForcePrefix + name
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		out, err := TransformToMarkdown(path, c)
		if err != nil {
			t.Fatalf("transform: %v", err)
		}
		s := string(out)
		title := strings.TrimPrefix(name, ForcePrefix)
		if !strings.HasPrefix(s, "# "+title+"\n") {
			t.Fatalf("output does not start with title %q: %q", title, s)
		}
		if !strings.Contains(s, "\n```"+rule.Tag+"\n") {
			t.Fatalf("missing opening fence with tag %q: %q", rule.Tag, s)
		}
		if n := strings.Count(s, "```"); n != 2 {
			t.Fatalf("expected exactly one fenced block, found %d fences", n)
		}
		if !strings.HasSuffix(s, "\n```") {
			t.Fatalf("output does not end with closing fence: %q", s)
		}
	})
}
