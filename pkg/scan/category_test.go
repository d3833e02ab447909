package scan

import (
	"path/filepath"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		expected Category
	}{
		{"movie.mp4", CategoryVideo},
		{"clip.3gp", CategoryVideo},
		{"photo.jpg", CategoryImage},
		{"PHOTO.JPG", CategoryImage},
		{"scan.heic", CategoryImage},
		{"manual.pdf", CategoryPDF},
		{"notes.txt", CategoryDocument},
		{"thesis.tex", CategoryDocument},
		{"backup.zip", CategoryArchive},
		{"archive.tar.gz", CategoryArchive},
		{"song.mp3", CategoryAudio},
		{"voice.opus", CategoryAudio},
		{"main.go", CategoryCode},
		{"index.html", CategoryCode},
		{"data.bin", CategoryOther},
		{"README", CategoryOther},
		{"file.", CategoryOther},
		{".bashrc", CategoryOther},
		{".gz", CategoryOther},
		{filepath.Join("some", "dir", "movie.mkv"), CategoryVideo},
		{filepath.Join("some", "dir", ".profile"), CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Categorize(tt.name)
			if actual != tt.expected {
				t.Errorf("Categorize(%q) = %s; want %s", tt.name, actual, tt.expected)
			}
		})
	}
}

func TestCategories_CoverTheMapping(t *testing.T) {
	seen := make(map[Category]bool, len(Categories))
	for _, c := range categoryByExt {
		seen[c] = true
	}
	for _, c := range Categories {
		if c == CategoryOther {
			continue // reached only through the fallback
		}
		if !seen[c] {
			t.Errorf("category %s has no extension mapped to it", c)
		}
	}
	if seen[CategoryNone] {
		t.Error("no extension may map to the directory sentinel")
	}
}
