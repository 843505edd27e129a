package site

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FileGlyph prefixes sidebar labels of entries that are not plain Markdown pages.
const FileGlyph = "📄 "

// DisplayName derives a sidebar label from a file or folder name.
//
//   - a leading "~" is dropped and the label always gets the file glyph
//   - a trailing ".md"/".MD" is dropped
//   - if a "." remains, the name is a non-Markdown file: everything from the last
//     "." on is cut and the label gets the file glyph
//   - the first letter of every space-separated word is upper-cased
//   - "-" and "_" become spaces
//
// Words are split before hyphens and underscores are replaced, so
// "my-file_name.txt" becomes "📄 My file name".
func DisplayName(name string) string {
	glyph := strings.HasPrefix(name, ForcePrefix)
	name = strings.TrimPrefix(name, ForcePrefix)

	name = strings.TrimSuffix(name, ".md")
	name = strings.TrimSuffix(name, ".MD")

	if i := strings.LastIndex(name, "."); i >= 0 {
		glyph = true
		name = name[:i]
	}

	words := strings.Split(name, " ")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	name = strings.Join(words, " ")

	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	if glyph {
		return FileGlyph + name
	}
	return name
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
