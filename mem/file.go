// Package mem provides an in-memory random-access byte store built on a
// block array, so growing it never copies the bytes already written.
package mem

import (
	"io"
	"sync"

	"github.com/dacapoday/blocks"
)

// File is an in-memory byte store with file-like random access.
// It is safe for concurrent use by multiple goroutines.
//
// File requires no initialization - just declare and use:
//
//	var f File
//	f.WriteAt([]byte("hello"), 0)
type File struct {
	rw   sync.RWMutex
	data *blocks.Uint8s
}

var (
	_ io.ReaderAt   = new(File)
	_ io.WriterAt   = new(File)
	_ io.ReaderFrom = new(File)
	_ io.WriterTo   = new(File)
	_ io.Closer     = new(File)
)

// segmentSize is the block size of the backing array.
const segmentSize = 32 * 1024

// content returns the backing array, creating it on first use.
// The caller must hold the write lock.
func (file *File) content() *blocks.Uint8s {
	if file.data == nil {
		file.data, _ = blocks.NewUint8s(1, segmentSize, blocks.Grow)
	}
	return file.data
}

// Close clears all data stored in the File and releases memory.
// After Close, the file size becomes 0.
// It is safe to write to the file again after closing.
func (file *File) Close() error {
	file.rw.Lock()
	file.data = nil
	file.rw.Unlock()
	return nil
}

// Size returns the current size of the file in bytes.
func (file *File) Size() int64 {
	file.rw.RLock()
	defer file.rw.RUnlock()
	if file.data == nil {
		return 0
	}
	return int64(file.data.Len())
}

// ReadFrom reads data from r until EOF and replaces the entire file content.
// It implements io.ReaderFrom interface.
//
// The blocks holding the previous content are reused.
//
// ReadFrom returns the number of bytes read and any error encountered,
// except that io.EOF is not returned as an error.
func (file *File) ReadFrom(r io.Reader) (n int64, err error) {
	file.rw.Lock()
	defer file.rw.Unlock()
	data := file.content()
	data.Reset()
	buf := make([]byte, segmentSize)
	for {
		c, err := r.Read(buf)
		if c > 0 {
			n += int64(c)
			data.AppendSlice(buf[:c])
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return n, err
		}
	}
}

// WriteTo writes the entire file content to w, one block at a time.
// It implements io.WriterTo interface.
//
// Returns the number of bytes written and any error encountered.
func (file *File) WriteTo(w io.Writer) (n int64, err error) {
	file.rw.RLock()
	defer file.rw.RUnlock()
	if file.data == nil {
		return
	}
	file.data.ProcessByBlock(0, file.data.Len(), func(block []byte, start, end, _ int) {
		if err != nil {
			return
		}
		var c int
		c, err = w.Write(block[start:end])
		n += int64(c)
	})
	return
}

// WriteAt writes len(p) bytes from p to the file starting at byte offset off.
// It implements io.WriterAt interface.
//
// If the write position extends beyond the current file size, the file
// is automatically grown and the gap is filled with zero bytes.
//
// WriteAt returns the number of bytes written (always len(p) if err is nil)
// and any error encountered. It returns an error if off is negative.
func (file *File) WriteAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	file.rw.Lock()
	defer file.rw.Unlock()
	data := file.content()
	if end := int(off) + len(p); end > data.Len() {
		if err = data.ResizeFill(end, 0); err != nil {
			return
		}
	}
	data.SetArray(int(off), p)
	return len(p), nil
}

// ReadAt reads len(p) bytes into p starting at byte offset off in the file.
// It implements io.ReaderAt interface.
//
// ReadAt returns the number of bytes read and any error encountered.
// A read that reaches the end of the file returns io.EOF.
//
// This is a thread-safe operation that can run concurrently with other reads.
func (file *File) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	file.rw.RLock()
	defer file.rw.RUnlock()
	if file.data == nil || off >= int64(file.data.Len()) {
		return 0, io.EOF
	}
	n = min(len(p), file.data.Len()-int(off))
	file.data.GetArray(int(off), p[:n])
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Truncate changes the size of the file.
//
// If the new size is smaller than the current size, the extra data is discarded.
// If the new size is larger, the file is extended and the new space is filled
// with zero bytes.
func (file *File) Truncate(size int64) error {
	file.rw.Lock()
	defer file.rw.Unlock()
	return file.content().ResizeFill(int(size), 0)
}

// Sync is a no-op for in-memory files and always returns nil.
func (file *File) Sync() error {
	return nil
}
