package model

import "io"

// Upload describes a file received with a form submission. The content is
// opened lazily so validation can reject it on metadata alone.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}
