// Package errors provides classified error primitives used across docsite.
//
// A ClassifiedError carries a category (config, filesystem, build, ...), a severity
// and free-form context. Errors are built through a fluent builder:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "copy file failed").
//		WithContext("path", src).
//		Fatal().
//		Build()
//
// The CLI adapter maps categories to process exit codes so the command surface can
// terminate with a stable status.
package errors
