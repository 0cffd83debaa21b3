package postcraft

import "strings"

// TitleMarker prefixes an explicit title line in fetched content.
const TitleMarker = "TITLE:"

// maxInferredTitleLength is the length, in UTF-16 code units, at which a
// first line is too long to be treated as a title.
const maxInferredTitleLength = 100

// ExtractedContent is the title/body split of a piece of raw text.
type ExtractedContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Extract separates an inferred title from the body of rawText.
//
// Only the first non-blank line is inspected, and these rules are tried in
// order:
//
//  1. A line starting with TitleMarker is an explicit title.
//  2. A line shorter than 100 characters that does not end in a period is an
//     inferred title.
//  3. Otherwise there is no title and rawText is returned as the body as-is.
//
// When a title is taken, the body is the remaining non-blank lines joined by
// newlines. Extract never fails.
func Extract(rawText string) ExtractedContent {
	lines := nonBlankLines(rawText)
	if len(lines) == 0 {
		return ExtractedContent{Body: rawText}
	}

	first := strings.TrimSpace(lines[0])
	rest := func() string {
		return strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	if strings.HasPrefix(first, TitleMarker) {
		return ExtractedContent{
			Title: strings.TrimSpace(strings.TrimPrefix(first, TitleMarker)),
			Body:  rest(),
		}
	}

	if looksLikeTitle(first) {
		return ExtractedContent{Title: first, Body: rest()}
	}

	return ExtractedContent{Body: rawText}
}

// looksLikeTitle reports whether line is short and not a declarative sentence.
func looksLikeTitle(line string) bool {
	return textLength(line) < maxInferredTitleLength && !strings.HasSuffix(line, ".")
}

func nonBlankLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
