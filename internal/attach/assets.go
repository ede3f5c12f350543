package attach

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AssetKind groups image and video assets by the content they illustrate.
type AssetKind string

const (
	AssetBlog     AssetKind = "blog"
	AssetReels    AssetKind = "reels"
	AssetStories  AssetKind = "stories"
	AssetArticles AssetKind = "articles"
	AssetGlobal   AssetKind = "global"
)

// Dimensions in pixels. Min dimensions are lower bounds, exact ones are
// required sizes. Flexible means any size.
type Dimensions struct {
	Width    int
	Height   int
	Min      bool
	Flexible bool
}

// AssetSpec describes accepted files for one asset kind.
type AssetSpec struct {
	Kind        AssetKind
	Path        string
	Formats     []string
	Dimensions  Dimensions
	AspectRatio string
	MaxSize     int64
}

var assetSpecs = map[AssetKind]AssetSpec{
	AssetBlog: {
		Kind: AssetBlog, Path: "/content-scale/assets/blog",
		Formats:    []string{"jpg", "png", "webp"},
		Dimensions: Dimensions{Width: 800, Height: 500, Min: true}, AspectRatio: "16:10",
		MaxSize: 500 * 1024,
	},
	AssetReels: {
		Kind: AssetReels, Path: "/content-scale/assets/reels",
		Formats:    []string{"mp4", "mov", "jpg", "png"},
		Dimensions: Dimensions{Width: 1080, Height: 1920}, AspectRatio: "9:16",
		MaxSize: 30 * 1024 * 1024,
	},
	AssetStories: {
		Kind: AssetStories, Path: "/content-scale/assets/stories",
		Formats:    []string{"jpg", "png", "mp4"},
		Dimensions: Dimensions{Width: 1080, Height: 1920}, AspectRatio: "9:16",
		MaxSize: 4 * 1024 * 1024,
	},
	AssetArticles: {
		Kind: AssetArticles, Path: "/content-scale/assets/articles",
		Formats:    []string{"jpg", "png", "webp"},
		Dimensions: Dimensions{Width: 1200, Height: 630, Min: true}, AspectRatio: "16:9",
		MaxSize: 1024 * 1024,
	},
	AssetGlobal: {
		Kind: AssetGlobal, Path: "/content-scale/assets/global",
		Formats:    []string{"svg", "png", "jpg"},
		Dimensions: Dimensions{Flexible: true},
		MaxSize:    200 * 1024,
	},
}

// SpecFor returns the spec for kind, or the global spec when unknown.
func SpecFor(kind AssetKind) AssetSpec {
	if s, ok := assetSpecs[kind]; ok {
		return s
	}
	return assetSpecs[AssetGlobal]
}

// KindFor maps a content type ID to the asset kind that illustrates it.
func KindFor(contentType string) AssetKind {
	switch {
	case contentType == "blog-post":
		return AssetBlog
	case contentType == "instagram-reel":
		return AssetReels
	case contentType == "instagram-story":
		return AssetStories
	case strings.Contains(contentType, "article"):
		return AssetArticles
	default:
		return AssetGlobal
	}
}

// ValidateFileSize reports whether size fits the kind's limit.
func ValidateFileSize(size int64, kind AssetKind) bool {
	return size <= SpecFor(kind).MaxSize
}

// ValidateFormat reports whether the file extension is accepted for kind.
func ValidateFormat(name string, kind AssetKind) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, f := range SpecFor(kind).Formats {
		if f == ext {
			return true
		}
	}
	return false
}

// Summary describes the accepted files, e.g.
// "jpg, png or webp, at least 800x500 (16:10), up to 500 KB".
func (s AssetSpec) Summary() string {
	var b strings.Builder
	formats := s.Formats
	if n := len(formats); n > 1 {
		b.WriteString(strings.Join(formats[:n-1], ", ") + " or " + formats[n-1])
	} else {
		b.WriteString(strings.Join(formats, ""))
	}
	switch {
	case s.Dimensions.Flexible:
		b.WriteString(", any size")
	case s.Dimensions.Min:
		fmt.Fprintf(&b, ", at least %dx%d", s.Dimensions.Width, s.Dimensions.Height)
	default:
		fmt.Fprintf(&b, ", %dx%d", s.Dimensions.Width, s.Dimensions.Height)
	}
	if s.AspectRatio != "" {
		fmt.Fprintf(&b, " (%s)", s.AspectRatio)
	}
	if s.MaxSize >= 1024*1024 {
		fmt.Fprintf(&b, ", up to %d MB", s.MaxSize/(1024*1024))
	} else {
		fmt.Fprintf(&b, ", up to %d KB", s.MaxSize/1024)
	}
	return b.String()
}
