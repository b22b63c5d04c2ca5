package gdnative

import "golang.org/x/xerrors"

var (
	// ErrNoMem is returned when the C allocator cannot satisfy a request.
	ErrNoMem = xerrors.New("cannot alloc memory")

	ErrIndexOutOfRange = xerrors.New("index out of range")
	ErrTypeMismatch    = xerrors.New("variant type mismatch")

	// ErrNilVariant is returned for a nil handle or an unpopulated array slot.
	ErrNilVariant = xerrors.New("nil variant")
)
