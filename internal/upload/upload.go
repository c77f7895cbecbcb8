// Package upload implements the multipart media ingestion pipeline: files are
// classified by form field into media/document buckets, validated against
// per-field MIME allow-lists and size/count limits, and persisted under
// collision-resistant names. The emitted URL path is also the storage path
// relative to the static file root; the project catalog depends on that.
package upload

import (
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rangachimalgi/real-estate-crm-backend/internal/metrics"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/models"
)

const (
	FieldImages          = "images"
	FieldVideos          = "videos"
	FieldBrochures       = "brochures"
	FieldLayoutPlans     = "layoutPlans"
	FieldApprovalLetters = "approvalLetters"

	BucketMedia     = "media"
	BucketDocuments = "documents"
)

// Fields lists the recognized file fields in persistence order. Unknown file
// fields in a request are ignored.
var Fields = []string{FieldImages, FieldVideos, FieldBrochures, FieldLayoutPlans, FieldApprovalLetters}

var bucketByField = map[string]string{
	FieldImages:          BucketMedia,
	FieldVideos:          BucketMedia,
	FieldBrochures:       BucketDocuments,
	FieldLayoutPlans:     BucketDocuments,
	FieldApprovalLetters: BucketDocuments,
}

var allowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}
var allowedVideoTypes = []string{"video/mp4", "video/avi", "video/mov", "video/wmv"}
var allowedDocumentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var allowedTypesByField = map[string][]string{
	FieldImages:          allowedImageTypes,
	FieldVideos:          allowedVideoTypes,
	FieldBrochures:       allowedDocumentTypes,
	FieldLayoutPlans:     allowedDocumentTypes,
	FieldApprovalLetters: allowedDocumentTypes,
}

// Limits are injected at construction so handlers and tests never depend on
// package-level mutable state.
type Limits struct {
	MaxFileSize int64
	MaxFiles    int
	MaxPerField map[string]int
}

func DefaultLimits() Limits {
	return Limits{
		MaxFileSize: 50 * 1024 * 1024,
		MaxFiles:    20,
		MaxPerField: map[string]int{
			FieldImages:          10,
			FieldVideos:          5,
			FieldBrochures:       5,
			FieldLayoutPlans:     5,
			FieldApprovalLetters: 5,
		},
	}
}

// ValidationError is a client-side rejection; handlers map it to 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// Result maps field name to the metadata records of its stored files.
type Result map[string][]models.MediaFile

func (r Result) Has(field string) bool { return len(r[field]) > 0 }

type Pipeline struct {
	baseDir string
	limits  Limits
}

func New(baseDir string) *Pipeline {
	return NewWithLimits(baseDir, DefaultLimits())
}

func NewWithLimits(baseDir string, limits Limits) *Pipeline {
	return &Pipeline{baseDir: baseDir, limits: limits}
}

// Ingest validates every file part first and only then persists, so a
// rejected request leaves nothing on disk. A save failure midway removes the
// files already written for this request.
func (p *Pipeline) Ingest(form *multipart.Form) (Result, error) {
	result := make(Result, len(Fields))
	if form == nil {
		return result, nil
	}

	total := 0
	for _, field := range Fields {
		files := form.File[field]
		total += len(files)
		if max := p.limits.MaxPerField[field]; len(files) > max {
			metrics.UploadRejected(field, "too_many_files")
			return nil, &ValidationError{
				Field:  field,
				Reason: fmt.Sprintf("at most %d files allowed", max),
			}
		}
		for _, fh := range files {
			if fh.Size > p.limits.MaxFileSize {
				metrics.UploadRejected(field, "file_too_large")
				return nil, &ValidationError{
					Field:  field,
					Reason: fmt.Sprintf("file %q exceeds the %dMB limit", fh.Filename, p.limits.MaxFileSize/(1024*1024)),
				}
			}
			contentType := fh.Header.Get("Content-Type")
			if !typeAllowed(field, contentType) {
				metrics.UploadRejected(field, "invalid_type")
				return nil, &ValidationError{
					Field: field,
					Reason: fmt.Sprintf("invalid file type %s. Allowed types: %s",
						contentType, strings.Join(allowedTypesByField[field], ", ")),
				}
			}
		}
	}
	if total > p.limits.MaxFiles {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("too many files: %d (maximum %d per request)", total, p.limits.MaxFiles),
		}
	}

	var saved []string
	for _, field := range Fields {
		bucket := bucketByField[field]
		for i, fh := range form.File[field] {
			name := generateName(field, fh.Filename)
			dir := filepath.Join(p.baseDir, bucket)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				removeAll(saved)
				return nil, fmt.Errorf("failed to create upload dir: %w", err)
			}
			dst := filepath.Join(dir, name)
			if err := saveFile(fh, dst); err != nil {
				removeAll(saved)
				return nil, fmt.Errorf("failed to save %q: %w", fh.Filename, err)
			}
			saved = append(saved, dst)
			metrics.UploadStored(field)

			result[field] = append(result[field], models.MediaFile{
				URL:          "/uploads/" + bucket + "/" + name,
				OriginalName: fh.Filename,
				Size:         fh.Size,
				MimeType:     fh.Header.Get("Content-Type"),
				Order:        i,
			})
		}
	}

	return result, nil
}

func typeAllowed(field, contentType string) bool {
	for _, t := range allowedTypesByField[field] {
		if t == contentType {
			return true
		}
	}
	return false
}

// generateName builds "{field}-{unixMilli}-{9 random digits}{ext}", keeping
// the original extension.
func generateName(field, original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d-%09d%s", field, time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
}

func saveFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func removeAll(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}
