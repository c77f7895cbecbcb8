package upload

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

type filePart struct {
	field       string
	name        string
	contentType string
	content     string
}

func buildForm(t *testing.T, parts []filePart) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, p.field, p.name))
		h.Set("Content-Type", p.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		if _, err := part.Write([]byte(p.content)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func countStoredFiles(t *testing.T, baseDir string) int {
	t.Helper()
	n := 0
	err := filepath.Walk(baseDir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			n++
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("walk %s: %v", baseDir, err)
	}
	return n
}

func TestIngestStoresValidFiles(t *testing.T) {
	dir := t.TempDir()
	p := New(dir)

	form := buildForm(t, []filePart{
		{FieldImages, "front.jpg", "image/jpeg", "jpeg-bytes"},
		{FieldImages, "back.png", "image/png", "png-bytes"},
		{FieldBrochures, "plan.pdf", "application/pdf", "pdf-bytes"},
	})

	result, err := p.Ingest(form)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	images := result[FieldImages]
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
	for i, img := range images {
		if img.Order != i {
			t.Errorf("image %d: order = %d", i, img.Order)
		}
		if !strings.HasPrefix(img.URL, "/uploads/media/") {
			t.Errorf("image %d: unexpected URL %q", i, img.URL)
		}
	}
	if images[0].OriginalName != "front.jpg" || images[0].MimeType != "image/jpeg" {
		t.Errorf("unexpected metadata: %+v", images[0])
	}
	if images[0].Size != int64(len("jpeg-bytes")) {
		t.Errorf("size = %d, want %d", images[0].Size, len("jpeg-bytes"))
	}

	brochures := result[FieldBrochures]
	if len(brochures) != 1 {
		t.Fatalf("expected 1 brochure, got %d", len(brochures))
	}
	if !strings.HasPrefix(brochures[0].URL, "/uploads/documents/") {
		t.Errorf("brochure stored outside documents bucket: %q", brochures[0].URL)
	}

	// The URL path doubles as the on-disk path relative to the base dir.
	rel := strings.TrimPrefix(images[0].URL, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("stored content = %q", data)
	}

	if got := countStoredFiles(t, dir); got != 3 {
		t.Errorf("files on disk = %d, want 3", got)
	}
}

func TestIngestRejectsInvalidType(t *testing.T) {
	dir := t.TempDir()
	p := New(dir)

	form := buildForm(t, []filePart{
		{FieldImages, "ok.jpg", "image/jpeg", "jpeg-bytes"},
		{FieldVideos, "notes.txt", "text/plain", "plain text"},
	})

	result, err := p.Ingest(form)
	if err == nil {
		t.Fatal("expected validation error")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Field != FieldVideos {
		t.Errorf("field = %q, want %q", ve.Field, FieldVideos)
	}
	if result != nil {
		t.Errorf("expected nil result, got %v", result)
	}
	if got := countStoredFiles(t, dir); got != 0 {
		t.Errorf("rejected request left %d files on disk", got)
	}
}

func TestIngestPerFieldLimit(t *testing.T) {
	dir := t.TempDir()
	limits := DefaultLimits()
	limits.MaxPerField[FieldImages] = 1
	p := NewWithLimits(dir, limits)

	form := buildForm(t, []filePart{
		{FieldImages, "a.jpg", "image/jpeg", "a"},
		{FieldImages, "b.jpg", "image/jpeg", "b"},
	})

	_, err := p.Ingest(form)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Field != FieldImages {
		t.Errorf("field = %q", ve.Field)
	}
	if got := countStoredFiles(t, dir); got != 0 {
		t.Errorf("%d files persisted despite rejection", got)
	}
}

func TestIngestTotalLimit(t *testing.T) {
	dir := t.TempDir()
	limits := DefaultLimits()
	limits.MaxFiles = 2
	p := NewWithLimits(dir, limits)

	form := buildForm(t, []filePart{
		{FieldImages, "a.jpg", "image/jpeg", "a"},
		{FieldImages, "b.jpg", "image/jpeg", "b"},
		{FieldBrochures, "c.pdf", "application/pdf", "c"},
	})

	_, err := p.Ingest(form)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !strings.Contains(ve.Reason, "too many files") {
		t.Errorf("reason = %q", ve.Reason)
	}
}

func TestIngestFileTooLarge(t *testing.T) {
	dir := t.TempDir()
	limits := DefaultLimits()
	limits.MaxFileSize = 4
	p := NewWithLimits(dir, limits)

	form := buildForm(t, []filePart{
		{FieldImages, "big.jpg", "image/jpeg", "way more than four bytes"},
	})

	_, err := p.Ingest(form)
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if got := countStoredFiles(t, dir); got != 0 {
		t.Errorf("%d files persisted despite rejection", got)
	}
}

func TestIngestNilForm(t *testing.T) {
	p := New(t.TempDir())
	result, err := p.Ingest(nil)
	if err != nil {
		t.Fatalf("Ingest(nil): %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty result, got %v", result)
	}
}

func TestGenerateName(t *testing.T) {
	pattern := regexp.MustCompile(`^images-\d+-\d{9}\.jpg$`)
	name := generateName(FieldImages, "photo.jpg")
	if !pattern.MatchString(name) {
		t.Errorf("generated name %q does not match %s", name, pattern)
	}

	// Extension preserved, random suffix differs between calls.
	other := generateName(FieldImages, "photo.jpg")
	if name == other {
		t.Errorf("two generated names collided: %q", name)
	}
}
