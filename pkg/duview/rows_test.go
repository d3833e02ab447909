package duview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duview/duview/pkg/scan"
)

func testEntries() []scan.Entry {
	return []scan.Entry{
		{Path: "/d/b.mp4", Name: "b.mp4", Size: 500, Kind: scan.KindFile, Category: scan.CategoryVideo},
		{Path: "/d/a.txt", Name: "a.txt", Size: 100, Kind: scan.KindFile, Category: scan.CategoryDocument},
		{Path: "/d/sub", Name: "sub", Size: 300, Kind: scan.KindDir},
		{Path: "/d/Zed.py", Name: "Zed.py", Size: 200, Kind: scan.KindFile, Category: scan.CategoryCode},
	}
}

func visibleNames(r *EntryRows) []string {
	names := make([]string, 0, r.GetRowCount()-1)
	for row := 1; row < r.GetRowCount(); row++ {
		names = append(names, r.EntryAt(row).Name)
	}
	return names
}

func TestEntryRows_Sorting(t *testing.T) {
	t.Run("by_size_descending_is_the_default", func(t *testing.T) {
		rows := NewEntryRows()
		rows.SetEntries(testEntries())

		assert.Equal(t, []string{"b.mp4", "sub", "Zed.py", "a.txt"}, visibleNames(rows))
	})

	t.Run("by_name_is_case_insensitive", func(t *testing.T) {
		rows := NewEntryRows()
		rows.SetEntries(testEntries())
		rows.SetSort(SortByName)

		assert.Equal(t, []string{"a.txt", "b.mp4", "sub", "Zed.py"}, visibleNames(rows))
	})
}

func TestEntryRows_Filtering(t *testing.T) {
	rows := NewEntryRows()
	rows.SetEntries(testEntries())

	t.Run("files_only", func(t *testing.T) {
		rows.SetFilter(FilterFiles)

		assert.Equal(t, []string{"b.mp4", "Zed.py", "a.txt"}, visibleNames(rows))
		assert.Equal(t, 3, rows.TotalCount())
	})

	t.Run("folders_only", func(t *testing.T) {
		rows.SetFilter(FilterFolders)

		assert.Equal(t, []string{"sub"}, visibleNames(rows))
	})

	t.Run("back_to_all", func(t *testing.T) {
		rows.SetFilter(FilterAll)

		assert.Equal(t, 4, rows.TotalCount())
	})
}

func TestKindFilter_Next(t *testing.T) {
	assert.Equal(t, FilterFiles, FilterAll.Next())
	assert.Equal(t, FilterFolders, FilterFiles.Next())
	assert.Equal(t, FilterAll, FilterFolders.Next())
}

func TestKindFilter_String(t *testing.T) {
	assert.Equal(t, "All", FilterAll.String())
	assert.Equal(t, "Files", FilterFiles.String())
	assert.Equal(t, "Folders", FilterFolders.String())
}

func TestEntryRows_DisplayCap(t *testing.T) {
	entries := make([]scan.Entry, 0, displayCap+200)
	for i := 0; i < displayCap+200; i++ {
		entries = append(entries, scan.Entry{
			Path:     fmt.Sprintf("/d/f%04d.txt", i),
			Name:     fmt.Sprintf("f%04d.txt", i),
			Size:     int64(i + 1),
			Kind:     scan.KindFile,
			Category: scan.CategoryDocument,
		})
	}

	rows := NewEntryRows()
	rows.SetEntries(entries)

	assert.Equal(t, displayCap+1, rows.GetRowCount())
	assert.Equal(t, displayCap+200, rows.TotalCount())
	assert.True(t, rows.Capped())

	// The cap keeps the biggest entries, not the first ones encountered.
	assert.Equal(t, int64(displayCap+200), rows.EntryAt(1).Size)
}

func TestEntryRows_EntryAt(t *testing.T) {
	rows := NewEntryRows()
	rows.SetEntries(testEntries())

	t.Run("header_row_has_no_entry", func(t *testing.T) {
		assert.Nil(t, rows.EntryAt(0))
	})

	t.Run("out_of_range", func(t *testing.T) {
		assert.Nil(t, rows.EntryAt(99))
		assert.Nil(t, rows.EntryAt(-1))
	})

	t.Run("returns_a_copy", func(t *testing.T) {
		e := rows.EntryAt(1)
		require.NotNil(t, e)
		e.Name = "mangled"

		assert.Equal(t, "b.mp4", rows.EntryAt(1).Name)
	})
}

func TestEntryRows_GetCell(t *testing.T) {
	rows := NewEntryRows()
	rows.SetEntries(testEntries())

	t.Run("header", func(t *testing.T) {
		assert.Equal(t, "  #", rows.GetCell(0, numColIndex).Text)
		assert.Equal(t, " Name", rows.GetCell(0, nameColIndex).Text)
		assert.Equal(t, "Type", rows.GetCell(0, typeColIndex).Text)
		assert.Equal(t, "  Size", rows.GetCell(0, sizeColIndex).Text)
		assert.Equal(t, "Path", rows.GetCell(0, pathColIndex).Text)
	})

	t.Run("file_row", func(t *testing.T) {
		assert.Equal(t, "1", rows.GetCell(1, numColIndex).Text)
		assert.Equal(t, " 📄b.mp4", rows.GetCell(1, nameColIndex).Text)
		assert.Equal(t, "Video", rows.GetCell(1, typeColIndex).Text)
		assert.Contains(t, rows.GetCell(1, sizeColIndex).Text, "500")
		assert.Equal(t, "/d/b.mp4", rows.GetCell(1, pathColIndex).Text)
	})

	t.Run("folder_row", func(t *testing.T) {
		assert.Equal(t, " 📁sub", rows.GetCell(2, nameColIndex).Text)
		assert.Equal(t, "Folder", rows.GetCell(2, typeColIndex).Text)
	})

	t.Run("out_of_range_row", func(t *testing.T) {
		assert.Nil(t, rows.GetCell(99, nameColIndex))
	})

	t.Run("column_count", func(t *testing.T) {
		assert.Equal(t, columnCount, rows.GetColumnCount())
	})
}
