package postcraft

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// MaxContentLength is the number of characters of blog content included in
// a generation request, counted in UTF-16 code units. The cut is not
// word-aware.
const MaxContentLength = 3000

// ContentHeader introduces the blog content section of an instruction.
const ContentHeader = "Blog content:"

// GenerationRequest is a fully composed instruction for a text generator.
type GenerationRequest struct {
	PlatformKey     PlatformKey `json:"platform"`
	InstructionText string      `json:"instructionText"`

	// ContentExcerptLength is the character cap applied to the blog content.
	ContentExcerptLength int `json:"contentExcerptLength"`
}

// BuildRequest assembles the generation request for the given content and
// platform. The result depends only on its inputs.
// Returns EUNKNOWNPLATFORM if key is not a supported platform.
func BuildRequest(title, body string, key PlatformKey) (*GenerationRequest, error) {
	policy, err := LookupPolicy(key)
	if err != nil {
		return nil, err
	}

	content := body
	if title != "" {
		content = "Title: " + title + "\n\n" + body
	}
	content = truncate(content, MaxContentLength)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create an optimized %s post from the blog content below.\n\n", policy.DisplayName)
	fmt.Fprintf(&sb, "%s guidelines:\n", policy.DisplayName)
	fmt.Fprintf(&sb, "- Target length: %s (never exceed %d characters)\n", policy.OptimalLength, policy.MaxLength)
	for _, rule := range policy.StyleRules() {
		fmt.Fprintf(&sb, "- %s\n", rule)
	}
	sb.WriteString("\n")
	sb.WriteString(ContentHeader)
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Respond with ONLY the %s post text. Do not include any commentary, explanation, or preamble.", policy.DisplayName)

	return &GenerationRequest{
		PlatformKey:          key,
		InstructionText:      sb.String(),
		ContentExcerptLength: MaxContentLength,
	}, nil
}

// textLength counts s in UTF-16 code units, the unit platform character
// limits are measured in. Characters outside the Basic Multilingual Plane
// count as two.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16Len(r)
	}
	return n
}

// truncate returns the longest prefix of s that is at most n UTF-16 code
// units long. A character that would straddle the cut is dropped whole.
func truncate(s string, n int) string {
	count := 0
	for i, r := range s {
		count += utf16Len(r)
		if count > n {
			return s[:i]
		}
	}
	return s
}

func utf16Len(r rune) int {
	if l := utf16.RuneLen(r); l > 0 {
		return l
	}
	return 1
}
