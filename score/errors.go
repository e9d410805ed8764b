// SPDX-License-Identifier: EPL-2.0

package score

import "errors"

var (
	// ErrEmptyScore is returned for a document or table with nothing in it.
	ErrEmptyScore = errors.New("score has no content")

	// ErrMissingColumn names a column a table header lacks.
	ErrMissingColumn = errors.New("missing score column")

	// ErrInvalidRow wraps a row that could not be parsed, with its number.
	ErrInvalidRow = errors.New("invalid score row")

	// ErrInvalidData reports a data section that cannot map rows to sound.
	ErrInvalidData = errors.New("invalid data mapping")
)
