package fsutils

import "fmt"

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes returns a human readable size string with two decimals,
// dividing by 1024 through B..TB and spilling into PB past that.
func FormatBytes(size int64) string {
	v := float64(size)
	for _, unit := range sizeUnits {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f PB", v)
}
