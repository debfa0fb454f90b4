package markup

import (
	"github.com/arthur-debert/tinct/pkg/errors"
)

func positioned(err *errors.TinctError, segment, offset int) *errors.TinctError {
	return err.
		WithDetail(errors.DetailSegment, segment).
		WithDetail(errors.DetailOffset, offset)
}

func errUnknownAttribute(name string, segment, offset int) error {
	return positioned(
		errors.Newf(errors.ErrUnknownAttribute, "unknown attribute %q at segment %d, offset %d", name, segment, offset),
		segment, offset,
	).WithDetail(errors.DetailName, name)
}

func errUnmatchedOpenBrace(segment, offset int) error {
	return positioned(
		errors.Newf(errors.ErrUnmatchedOpenBrace, "unmatched '{' at segment %d, offset %d", segment, offset),
		segment, offset,
	)
}

func errUnmatchedCloseBrace(segment, offset int) error {
	return positioned(
		errors.Newf(errors.ErrUnmatchedCloseBrace, "unmatched '}' at segment %d, offset %d", segment, offset),
		segment, offset,
	)
}

func errEmptyStyleList(segment, offset int) error {
	return positioned(
		errors.Newf(errors.ErrEmptyStyleList, "empty style list at segment %d, offset %d", segment, offset),
		segment, offset,
	)
}

func errEmptyStyleName(segment, offset int) error {
	return positioned(
		errors.Newf(errors.ErrEmptyStyleList, "empty style name at segment %d, offset %d", segment, offset),
		segment, offset,
	)
}

// Position returns the segment index and byte offset recorded on a markup
// error.
func Position(err error) (segment, offset int, ok bool) {
	details := errors.GetErrorDetails(err)
	if details == nil {
		return 0, 0, false
	}
	segment, ok1 := details[errors.DetailSegment].(int)
	offset, ok2 := details[errors.DetailOffset].(int)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return segment, offset, true
}
