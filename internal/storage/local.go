package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// localStorage keeps objects as files below root and serves them from baseURL.
type localStorage struct {
	root    string
	baseURL string
}

// NewLocal creates a disk backed Storage rooted at root. The directory is
// created if missing. Download links are baseURL joined with the key.
func NewLocal(root, baseURL string) (Storage, error) {
	if root == "" {
		return nil, fmt.Errorf("media root is required: %w", ErrNotConfigured)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve media root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	if baseURL == "" {
		baseURL = "/media/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &localStorage{root: abs, baseURL: baseURL}, nil
}

func (l *localStorage) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || clean != "/"+key {
		return "", ErrInvalidKey
	}
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}

// Put writes the object to a temporary file and renames it into place.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	p, err := l.path(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return ObjectInfo{}, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return ObjectInfo{}, err
	}
	n, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return ObjectInfo{}, err
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		_ = os.Remove(tmp.Name())
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}, nil
}

// Get opens the stored file.
func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	p, err := l.path(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		ContentType:  mime.TypeByExtension(filepath.Ext(p)),
		LastModified: st.ModTime(),
	}, nil
}

// Delete removes the file. Missing files are not an error.
func (l *localStorage) Delete(ctx context.Context, key string) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// PresignGet returns the public media URL; local files carry no expiry.
func (l *localStorage) PresignGet(ctx context.Context, key string, _ time.Duration) (string, error) {
	if _, err := l.path(key); err != nil {
		return "", err
	}
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return l.baseURL + strings.Join(segments, "/"), nil
}
