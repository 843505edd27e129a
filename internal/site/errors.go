package site

import "errors"

var (
	// ErrSourceNotDirectory indicates the materialization source is not a directory.
	ErrSourceNotDirectory = errors.New("source is not a directory")

	// ErrWalkFailed indicates a directory listing failed during traversal.
	ErrWalkFailed = errors.New("directory walk failed")

	// ErrTransformFailed indicates a file could not be wrapped into Markdown.
	ErrTransformFailed = errors.New("markdown transform failed")

	// ErrIndexSynthesisFailed indicates a default landing page could not be written.
	ErrIndexSynthesisFailed = errors.New("index synthesis failed")
)
