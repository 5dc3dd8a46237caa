package models

import (
	"strconv"

	"github.com/google/uuid"
)

// MovieRef identifies a movie either by its external catalog id (numeric) or
// by its internal storage id (UUID). The shape is decided once, when the
// request path parameter is parsed; nothing downstream re-inspects the raw
// string.
type MovieRef struct {
	external int64
	internal uuid.UUID
	isExt    bool
}

func ExternalRef(id int64) MovieRef {
	return MovieRef{external: id, isExt: true}
}

func InternalRef(id uuid.UUID) MovieRef {
	return MovieRef{internal: id}
}

// ParseMovieRef classifies a raw path id. A value that parses as an integer
// is an external catalog id; a UUID is an internal id; anything else is
// rejected.
func ParseMovieRef(raw string) (MovieRef, bool) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ExternalRef(n), true
	}
	if id, err := uuid.Parse(raw); err == nil {
		return InternalRef(id), true
	}
	return MovieRef{}, false
}

// External returns the catalog id when the ref is external.
func (r MovieRef) External() (int64, bool) {
	return r.external, r.isExt
}

// Internal returns the storage id when the ref is internal.
func (r MovieRef) Internal() (uuid.UUID, bool) {
	return r.internal, !r.isExt
}

func (r MovieRef) String() string {
	if r.isExt {
		return strconv.FormatInt(r.external, 10)
	}
	return r.internal.String()
}
