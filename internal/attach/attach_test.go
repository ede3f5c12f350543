package attach

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// minimalPDF builds a well-formed PDF with the given number of empty pages.
func minimalPDF(pages int) []byte {
	var objs []string
	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")
	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		objs = append(objs, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mime string
		size int64
		want error
	}{
		{"brief.pdf", MimePDF, 1024, nil},
		{"brief.doc", MimeDOC, 1024, nil},
		{"brief.docx", MimeDOCX, MaxSize, nil},
		{"brief.docx", "", 10, nil},
		{"brief.pdf", "application/octet-stream", 10, nil},
		{"photo.png", "image/png", 10, ErrUnsupportedAttachment},
		{"notes.txt", "", 10, ErrUnsupportedAttachment},
		{"big.pdf", MimePDF, MaxSize + 1, ErrAttachmentTooLarge},
	}
	for _, tt := range tests {
		err := Validate(tt.name, tt.mime, tt.size)
		if !errors.Is(err, tt.want) {
			t.Errorf("Validate(%q, %q, %d) = %v, want %v", tt.name, tt.mime, tt.size, err, tt.want)
		}
	}
}

func TestPageCount(t *testing.T) {
	n, err := PageCount(minimalPDF(3))
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n != 3 {
		t.Errorf("PageCount = %d, want 3", n)
	}

	if _, err := PageCount([]byte("not a pdf")); err == nil {
		t.Errorf("expected error for garbage input")
	}
}

func TestExtract(t *testing.T) {
	e := NewExtractor(0)

	text, err := e.Extract(context.Background(), Attachment{Name: "deck.pdf", Mime: MimePDF, Data: minimalPDF(2)})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.HasPrefix(text, "[Attached file: deck.pdf]\n\n") {
		t.Errorf("missing attachment header: %q", text)
	}
	if !strings.Contains(text, "PDF document with 2 page(s).") {
		t.Errorf("missing page count: %q", text)
	}

	text, err = e.Extract(context.Background(), Attachment{Name: "notes.docx", Mime: MimeDOCX})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "[Attached file: notes.docx]\n\nFile content would be extracted here using a PDF/DOC parser library."
	if text != want {
		t.Errorf("Extract = %q, want %q", text, want)
	}
}

func TestExtractCancelled(t *testing.T) {
	e := NewExtractor(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Extract(ctx, Attachment{Name: "a.pdf"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestAssetSpecs(t *testing.T) {
	tests := []struct {
		contentType string
		kind        AssetKind
	}{
		{"blog-post", AssetBlog},
		{"instagram-reel", AssetReels},
		{"instagram-story", AssetStories},
		{"news-article", AssetArticles},
		{"email", AssetGlobal},
	}
	for _, tt := range tests {
		if got := KindFor(tt.contentType); got != tt.kind {
			t.Errorf("KindFor(%q) = %q, want %q", tt.contentType, got, tt.kind)
		}
	}

	if SpecFor("unknown").Kind != AssetGlobal {
		t.Errorf("unknown kind should fall back to global")
	}
	if !ValidateFileSize(500*1024, AssetBlog) || ValidateFileSize(500*1024+1, AssetBlog) {
		t.Errorf("blog size limit is 500KB")
	}
	if !ValidateFormat("clip.MOV", AssetReels) || ValidateFormat("clip.mov", AssetBlog) {
		t.Errorf("format validation is wrong")
	}
	if ValidateFormat("logo.gif", "unknown") {
		t.Errorf("gif is not a global format")
	}
}

func TestAssetSpecSummary(t *testing.T) {
	tests := []struct {
		kind AssetKind
		want string
	}{
		{AssetBlog, "jpg, png or webp, at least 800x500 (16:10), up to 500 KB"},
		{AssetReels, "mp4, mov, jpg or png, 1080x1920 (9:16), up to 30 MB"},
		{AssetGlobal, "svg, png or jpg, any size, up to 200 KB"},
	}
	for _, tt := range tests {
		if got := SpecFor(tt.kind).Summary(); got != tt.want {
			t.Errorf("Summary(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
