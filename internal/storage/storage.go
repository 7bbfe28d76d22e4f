package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrObjectNotFound  = errors.New("object not found")
)

// Kind decides where an object is stored and which content types it accepts.
type Kind string

const (
	KindCaseDocument Kind = "cases"
	KindProfileImage Kind = "profiles"
)

// FileStorage stores objects by key. Keys are returned by Upload and are the
// only thing callers persist.
type FileStorage interface {
	Upload(ctx context.Context, kind Kind, data []byte, filename string) (string, error)
	Delete(ctx context.Context, key string) error
	Get(ctx context.Context, key string) ([]byte, error)
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	PublicURL(key string) string
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

const (
	contentTypePDF  = "application/pdf"
	contentTypeDOC  = "application/msword"
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// classify sniffs data and returns the content type and object extension, or
// ErrUnsupportedType when kind does not accept it.
func classify(kind Kind, data []byte, filename string) (string, string, error) {
	if len(data) == 0 {
		return "", "", ErrEmptyFile
	}

	detected := http.DetectContentType(data)
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	ext := strings.ToLower(filepath.Ext(filename))

	if imgExt, ok := imageExtensions[detected]; ok {
		return detected, imgExt, nil
	}
	if kind == KindProfileImage {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedType, detected)
	}

	switch {
	case detected == contentTypePDF:
		return contentTypePDF, ".pdf", nil
	case detected == "application/zip" && ext == ".docx":
		return contentTypeDOCX, ".docx", nil
	case detected == "application/octet-stream" && ext == ".doc":
		return contentTypeDOC, ".doc", nil
	}

	return "", "", fmt.Errorf("%w: %s", ErrUnsupportedType, detected)
}

func objectKey(kind Kind, ext string) string {
	return fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), ext)
}
