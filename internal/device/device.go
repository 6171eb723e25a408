// Package device opens files and block devices for wiping behind one
// uniform write/sync/close contract. Platform differences (raw device
// open, capacity query, sector geometry) live in the per-platform
// openTarget implementations; callers never branch on the OS.
package device

import (
	"errors"
	"io"
	"os"
)

// Kind classifies a wipe target.
type Kind int

const (
	KindFile Kind = iota
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block_device"
	default:
		return "file"
	}
}

var (
	ErrNotFound        = errors.New("target does not exist")
	ErrPermission      = errors.New("permission denied opening target")
	ErrIsDirectory     = errors.New("target is a directory")
	ErrSizeUnavailable = errors.New("device size could not be determined")
)

// Target is one open wipe target. Writes are sequential from the current
// cursor; Rewind returns the cursor to byte zero at pass boundaries.
type Target interface {
	Path() string
	Kind() Kind
	Size() uint64
	// SectorSize reports the device's required write alignment in bytes,
	// or 0 when the target has no alignment requirement.
	SectorSize() int
	Write(p []byte) (int, error)
	Rewind() error
	Sync() error
	Close() error
}

// Open opens path for writing and resolves its kind and size. For block
// devices a failed capacity query is fatal: without a size the engine
// cannot bound its writes.
func Open(path string) (Target, error) {
	return openTarget(path)
}

// target is the common implementation over an *os.File handle; the
// platform openTarget functions fill in kind, size and sector.
type target struct {
	f      *os.File
	path   string
	kind   Kind
	size   uint64
	sector int
}

func (t *target) Path() string    { return t.path }
func (t *target) Kind() Kind      { return t.kind }
func (t *target) Size() uint64    { return t.size }
func (t *target) SectorSize() int { return t.sector }

func (t *target) Write(p []byte) (int, error) {
	return t.f.Write(p)
}

func (t *target) Rewind() error {
	_, err := t.f.Seek(0, io.SeekStart)
	return err
}

func (t *target) Sync() error {
	return t.f.Sync()
}

func (t *target) Close() error {
	return t.f.Close()
}
