package scan

import "maps"

// Aggregate accumulates the result of one scan: running totals, counts per
// kind, per-category byte totals and the flat inventory of visited entries.
// The scanning goroutine owns and mutates it; everyone else reads Snapshot
// copies.
type Aggregate struct {
	TotalSize      int64              `json:"total_size"`
	FileCount      int64              `json:"file_count"`
	DirCount       int64              `json:"dir_count"`
	CategoryTotals map[Category]int64 `json:"category_totals"`
	Entries        []Entry            `json:"entries"`
}

func NewAggregate() *Aggregate {
	return &Aggregate{
		CategoryTotals: make(map[Category]int64, len(Categories)),
	}
}

func (a *Aggregate) addFile(path, name string, size int64, category Category) {
	a.TotalSize += size
	a.FileCount++
	a.CategoryTotals[category] += size
	a.Entries = append(a.Entries, Entry{
		Path:     path,
		Name:     name,
		Size:     size,
		Kind:     KindFile,
		Category: category,
	})
}

// addDir appends the inventory entry only. DirCount is incremented by the
// walker when a directory's listing succeeds, which is a different set:
// depth-cut and unreadable directories get an entry but no count, while the
// root gets a count but no entry.
func (a *Aggregate) addDir(path, name string, size int64) {
	a.Entries = append(a.Entries, Entry{
		Path: path,
		Name: name,
		Size: size,
		Kind: KindDir,
	})
}

// Snapshot returns a copy that stays safe to read while the scan keeps
// mutating the live aggregate. Entries is capped at its current length over
// the append-only backing array, so no deep copy is needed; the totals map
// is cloned.
func (a *Aggregate) Snapshot() *Aggregate {
	s := *a
	s.CategoryTotals = maps.Clone(a.CategoryTotals)
	s.Entries = a.Entries[:len(a.Entries):len(a.Entries)]
	return &s
}

// Largest returns the biggest entry of any kind, or nil for an empty scan.
func (a *Aggregate) Largest() *Entry {
	var largest *Entry
	for i := range a.Entries {
		if largest == nil || a.Entries[i].Size > largest.Size {
			largest = &a.Entries[i]
		}
	}
	return largest
}
