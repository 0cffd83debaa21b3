package postcraft

import "regexp"

// Post is a generated social media post.
type Post struct {
	ID       string      `json:"id"`
	Platform PlatformKey `json:"platform"`
	Text     string      `json:"text"`
	Stats    PostStats   `json:"stats"`
}

// PostStats compares a post against its platform's advisory limits.
type PostStats struct {
	Characters    int    `json:"characters"`
	Hashtags      int    `json:"hashtags"`
	MaxLength     int    `json:"maxLength"`
	OptimalLength string `json:"optimalLength"`
	OverLimit     bool   `json:"overLimit"`
}

var hashtagRe = regexp.MustCompile(`(?:^|\s)#[\p{L}\p{N}_]+`)

// Inspect measures text against policy. Nothing is enforced; the stats are
// for display only.
func Inspect(text string, policy PlatformPolicy) PostStats {
	chars := textLength(text)
	return PostStats{
		Characters:    chars,
		Hashtags:      len(hashtagRe.FindAllString(text, -1)),
		MaxLength:     policy.MaxLength,
		OptimalLength: policy.OptimalLength,
		OverLimit:     chars > policy.MaxLength,
	}
}
