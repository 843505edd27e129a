// Package site turns a directory of mixed documentation sources into a docsify
// build tree and derives the navigation sidebar from the result.
//
// The work happens in two sequential passes:
//
//   - Materializer mirrors the source tree into the build directory. Markdown and
//     PNG files are copied as-is, recognised text files are wrapped into a fenced
//     Markdown block (config.ini becomes config.ini.md), everything else is dropped.
//   - Synthesizer walks the materialized build directory, creates a default landing
//     page in every folder lacking one, and emits the ordered sidebar entries.
//
// Both passes are depth-first and synchronous, and both write to disk while they walk.
package site
