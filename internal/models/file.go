package models

import "io"

// ResultStream carries a finished render back to the client. The
// handler owns closing Body. ContentLength of 0 means unknown.
type ResultStream struct {
	Body          io.ReadCloser
	FileName      string
	ContentType   string
	ContentLength int64
}
