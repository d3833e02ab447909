package scan

// Kind tells files and directories apart in the inventory.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one visited file or directory. A directory's size is the sum of
// everything successfully visited beneath it, which is zero when the walk
// never got inside (depth cutoff, permission failure).
type Entry struct {
	Path     string   `json:"path"`
	Name     string   `json:"name"`
	Size     int64    `json:"size"`
	Kind     Kind     `json:"kind"`
	Category Category `json:"category,omitempty"`
}
