package domain

import "testing"

func TestExtensionLookup(t *testing.T) {
	table := DefaultTypeTable()

	cases := []struct {
		mime string
		want string
	}{
		{"image/png", "png"},
		{"audio/mpeg", "mp3"},
		{"audio/mp3", "mp3"},
		{"application/zip", "zip"},
		{"application/x-zip-compressed", "zip"},
		{"application/pdf", "pdf"},
		{"application/json; charset=utf-8", "json"},
		{"application/vnd.unknown", "bin"},
		{"", "bin"},
	}

	for _, tc := range cases {
		if got := table.Extension(tc.mime); got != tc.want {
			t.Errorf("Extension(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}

func TestArchiveSetMatchesClassifier(t *testing.T) {
	table := DefaultTypeTable()
	c := NewClassifier(table.ArchiveTypes)

	for _, m := range table.ArchiveTypes {
		if got := c.Classify(m); got != CategoryArchive {
			t.Errorf("Classify(%q) = %s, want %s", m, got, CategoryArchive)
		}
	}
}
