package enum

import "errors"

// contract violations of datastruct/slist, raised through asserts.Assert
var (
	LIST_IS_NIL        = errors.New("list is nil")
	LIST_IS_EMPTY      = errors.New("list is empty")
	ITERATOR_AT_END    = errors.New("iterator is at end")
	DEREF_BEFORE_BEGIN = errors.New("dereference of before-begin position")
	NO_SUCCESSOR       = errors.New("position has no successor")
)

// script errors
var (
	EMPTY_SCRIPT = errors.New("script has no steps")
	UNKNOWN_OP   = errors.New("unknown operation")
	BAD_POSITION = errors.New("position out of range")
	BAD_VALUE    = errors.New("malformed value")
)
