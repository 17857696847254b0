package skills

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNoFrontmatter indicates the file does not begin with a `---` delimiter line.
	ErrNoFrontmatter = errors.New("missing frontmatter: file must start with ---")
	// ErrUnclosedFrontmatter indicates the opening delimiter is never closed.
	ErrUnclosedFrontmatter = errors.New("unclosed frontmatter: no closing --- delimiter")
)

// isDelimiter reports whether a line consists solely of the frontmatter
// delimiter, tolerating a trailing carriage return from CRLF input.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, "\r") == "---"
}

// SplitFrontmatter splits raw SKILL.md content into the YAML header and
// the Markdown body. The header is delimited by a `---` line at the very
// start of the content and the first subsequent `---` line. The body is
// returned verbatim, so delimiter-like lines inside it are preserved and
// never re-trigger header parsing.
func SplitFrontmatter(content string) (header, body string, err error) {
	first, rest, hasMore := strings.Cut(content, "\n")
	if !isDelimiter(first) {
		return "", "", ErrNoFrontmatter
	}
	if !hasMore {
		return "", "", ErrUnclosedFrontmatter
	}

	offset := 0
	for offset <= len(rest) {
		end := strings.IndexByte(rest[offset:], '\n')
		var line string
		next := len(rest) + 1
		if end >= 0 {
			line = rest[offset : offset+end]
			next = offset + end + 1
		} else {
			line = rest[offset:]
		}

		if isDelimiter(line) {
			if next > len(rest) {
				return rest[:offset], "", nil
			}
			return rest[:offset], rest[next:], nil
		}
		offset = next
	}

	return "", "", ErrUnclosedFrontmatter
}
