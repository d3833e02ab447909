package scan

import (
	"path/filepath"
	"strings"
)

// Category is the content class assigned to a file by its extension.
type Category string

const (
	CategoryVideo    Category = "video"
	CategoryImage    Category = "image"
	CategoryPDF      Category = "pdf"
	CategoryDocument Category = "document"
	CategoryArchive  Category = "archive"
	CategoryAudio    Category = "audio"
	CategoryCode     Category = "code"
	CategoryOther    Category = "other"

	// CategoryNone marks entries that are not files.
	CategoryNone Category = ""
)

// Categories lists every category a file can fall into, in display order.
var Categories = []Category{
	CategoryVideo,
	CategoryImage,
	CategoryPDF,
	CategoryDocument,
	CategoryArchive,
	CategoryAudio,
	CategoryCode,
	CategoryOther,
}

var categoryByExt = map[string]Category{
	// Video
	".mp4":  CategoryVideo,
	".avi":  CategoryVideo,
	".mkv":  CategoryVideo,
	".mov":  CategoryVideo,
	".wmv":  CategoryVideo,
	".flv":  CategoryVideo,
	".webm": CategoryVideo,
	".m4v":  CategoryVideo,
	".mpg":  CategoryVideo,
	".mpeg": CategoryVideo,
	".3gp":  CategoryVideo,
	// Image
	".jpg":  CategoryImage,
	".jpeg": CategoryImage,
	".png":  CategoryImage,
	".gif":  CategoryImage,
	".bmp":  CategoryImage,
	".svg":  CategoryImage,
	".webp": CategoryImage,
	".ico":  CategoryImage,
	".tiff": CategoryImage,
	".raw":  CategoryImage,
	".heic": CategoryImage,
	// PDF
	".pdf": CategoryPDF,
	// Document
	".doc":   CategoryDocument,
	".docx":  CategoryDocument,
	".txt":   CategoryDocument,
	".odt":   CategoryDocument,
	".rtf":   CategoryDocument,
	".tex":   CategoryDocument,
	".wpd":   CategoryDocument,
	".pages": CategoryDocument,
	// Archive
	".zip": CategoryArchive,
	".tar": CategoryArchive,
	".gz":  CategoryArchive,
	".bz2": CategoryArchive,
	".7z":  CategoryArchive,
	".rar": CategoryArchive,
	".xz":  CategoryArchive,
	".tgz": CategoryArchive,
	".deb": CategoryArchive,
	".rpm": CategoryArchive,
	// Audio
	".mp3":  CategoryAudio,
	".wav":  CategoryAudio,
	".flac": CategoryAudio,
	".aac":  CategoryAudio,
	".ogg":  CategoryAudio,
	".m4a":  CategoryAudio,
	".wma":  CategoryAudio,
	".opus": CategoryAudio,
	// Code
	".py":   CategoryCode,
	".js":   CategoryCode,
	".java": CategoryCode,
	".cpp":  CategoryCode,
	".c":    CategoryCode,
	".h":    CategoryCode,
	".sh":   CategoryCode,
	".rb":   CategoryCode,
	".go":   CategoryCode,
	".rs":   CategoryCode,
	".php":  CategoryCode,
	".html": CategoryCode,
	".css":  CategoryCode,
}

// Categorize maps a file name (or path) to its content category by the
// final extension alone. Unknown extensions fall into CategoryOther, and a
// name that is all extension (a dotfile) counts as having none.
func Categorize(name string) Category {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return CategoryOther
	}
	if c, ok := categoryByExt[strings.ToLower(ext)]; ok {
		return c
	}
	return CategoryOther
}
