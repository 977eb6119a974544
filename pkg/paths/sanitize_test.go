package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeArchivePath(t *testing.T) {
	root := filepath.Join("/", "games", "wow", "Interface", "AddOns")

	tests := []struct {
		name  string
		entry string
		want  string
	}{
		{
			name:  "plain relative entry",
			entry: "AddonA/AddonA.toc",
			want:  filepath.Join(root, "AddonA", "AddonA.toc"),
		},
		{
			name:  "nested entry",
			entry: "AddonA/libs/LibStub/LibStub.lua",
			want:  filepath.Join(root, "AddonA", "libs", "LibStub", "LibStub.lua"),
		},
		{
			name:  "parent traversal is dropped not resolved",
			entry: "../../etc/passwd",
			want:  filepath.Join(root, "etc", "passwd"),
		},
		{
			name:  "interior traversal",
			entry: "AddonA/../../evil.lua",
			want:  filepath.Join(root, "AddonA", "evil.lua"),
		},
		{
			name:  "absolute path",
			entry: "/etc/passwd",
			want:  filepath.Join(root, "etc", "passwd"),
		},
		{
			name:  "windows drive prefix",
			entry: `C:\Windows\System32\evil.dll`,
			want:  filepath.Join(root, "Windows", "System32", "evil.dll"),
		},
		{
			name:  "backslash separators",
			entry: `AddonA\AddonA.toc`,
			want:  filepath.Join(root, "AddonA", "AddonA.toc"),
		},
		{
			name:  "current dir segments",
			entry: "./AddonA/./AddonA.toc",
			want:  filepath.Join(root, "AddonA", "AddonA.toc"),
		},
		{
			name:  "nul byte truncates",
			entry: "AddonA/good.lua\x00../../../etc/passwd",
			want:  filepath.Join(root, "AddonA", "good.lua"),
		},
		{
			name:  "empty name degrades to root",
			entry: "",
			want:  root,
		},
		{
			name:  "only unsafe segments degrade to root",
			entry: "../..//..",
			want:  root,
		},
		{
			name:  "trailing slash directory entry",
			entry: "AddonA/",
			want:  filepath.Join(root, "AddonA"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeArchivePath(root, tt.entry)
			assert.Equal(t, tt.want, got)
			assert.True(t, ContainsPath(root, got),
				"sanitized path %q escaped root %q", got, root)
		})
	}
}

func TestSanitizeArchivePathNeverEscapes(t *testing.T) {
	root := t.TempDir()

	payloads := []string{
		"....//....//etc/passwd",
		"..%2f..%2fetc/passwd",
		"a/b/c/../../../../../../../../tmp/evil",
		`\\server\share\evil`,
		"/..//../",
		"..\\..\\..\\windows\\win.ini",
		"\x00",
		"con/aux/nul",
	}

	for _, payload := range payloads {
		got := SanitizeArchivePath(root, payload)
		assert.True(t, ContainsPath(root, got),
			"payload %q produced escaping path %q", payload, got)
	}
}

func TestTopLevelSegment(t *testing.T) {
	tests := []struct {
		name   string
		entry  string
		want   string
		wantOK bool
	}{
		{"file inside folder", "AddonA/AddonA.toc", "AddonA", true},
		{"bare directory entry", "AddonA/", "AddonA", true},
		{"traversal prefix skipped", "../AddonA/file", "AddonA", true},
		{"empty name", "", "", false},
		{"dots only", "../..", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TopLevelSegment(tt.entry)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainsPath(t *testing.T) {
	assert.True(t, ContainsPath("/a/b", "/a/b/c"))
	assert.True(t, ContainsPath("/a/b", "/a/b"))
	assert.False(t, ContainsPath("/a/b", "/a"))
	assert.False(t, ContainsPath("/a/b", "/a/bc"))
	assert.False(t, ContainsPath("/a/b", "/a/b/../c"))
}
