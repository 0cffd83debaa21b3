// Package compose runs the end-to-end flow behind the CLI and HTTP API:
// resolve blog content, build a generation request for one platform, call the
// generator and describe the resulting post.
package compose

import (
	"context"
	"strings"

	"github.com/fwojciec/postcraft"
	"github.com/google/uuid"
)

// DefaultMaxOutputTokens is the generation budget when none is configured.
const DefaultMaxOutputTokens = 1000

// Messages shown when the caller has not supplied anything to work with.
const (
	MsgMissingContent = "Please add your blog content"
	MsgMissingURL     = "Please enter a blog URL"
)

// Mode selects where the blog content comes from.
type Mode string

const (
	// ModePaste uses Input.Title and Input.Content as supplied.
	ModePaste Mode = "paste"
	// ModeURL fetches Input.URL and extracts the title and body.
	ModeURL Mode = "url"
)

// Input describes one compose request. An empty Mode is inferred: URL mode
// when URL is set, paste mode otherwise. An empty Platform means
// postcraft.DefaultPlatform.
type Input struct {
	Mode     Mode                  `json:"mode,omitempty"`
	Title    string                `json:"title,omitempty"`
	Content  string                `json:"content,omitempty"`
	URL      string                `json:"url,omitempty"`
	Platform postcraft.PlatformKey `json:"platform,omitempty"`
}

// Draft is the resolved content and the request built from it.
type Draft struct {
	Title   string                       `json:"title"`
	Body    string                       `json:"body"`
	Request *postcraft.GenerationRequest `json:"request"`
}

// Composer orchestrates the collaborators. ContentFetcher is only required
// for URL mode.
type Composer struct {
	ContentFetcher  postcraft.ContentFetcher
	Generator       postcraft.Generator
	MaxOutputTokens int
}

// Fetch retrieves the raw text of the blog post at url.
func (c *Composer) Fetch(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", postcraft.Errorf(postcraft.EEMPTYINPUT, MsgMissingURL)
	}
	if c.ContentFetcher == nil {
		return "", postcraft.Errorf(postcraft.EINTERNAL, "no content fetcher configured")
	}
	return c.ContentFetcher.FetchContent(ctx, url)
}

// FromURL fetches a blog post and splits it into title and body.
func (c *Composer) FromURL(ctx context.Context, url string) (postcraft.ExtractedContent, error) {
	raw, err := c.Fetch(ctx, url)
	if err != nil {
		return postcraft.ExtractedContent{}, err
	}
	return postcraft.Extract(raw), nil
}

// Prepare resolves the content of in and builds its generation request.
//
// In paste mode an explicit title is used as-is with the trimmed content.
// Without a title the content goes through postcraft.Extract so a heading
// line is picked up the same way it is for fetched pages. Content that
// extraction would reduce to a title alone is kept whole as the body.
func (c *Composer) Prepare(ctx context.Context, in Input) (*Draft, error) {
	mode := in.Mode
	if mode == "" {
		mode = ModePaste
		if strings.TrimSpace(in.URL) != "" {
			mode = ModeURL
		}
	}

	var content postcraft.ExtractedContent
	switch mode {
	case ModeURL:
		var err error
		if content, err = c.FromURL(ctx, in.URL); err != nil {
			return nil, err
		}
	case ModePaste:
		content.Title = strings.TrimSpace(in.Title)
		content.Body = strings.TrimSpace(in.Content)
		if content.Title == "" && content.Body != "" {
			if extracted := postcraft.Extract(content.Body); extracted.Body != "" {
				content = extracted
			}
		}
	default:
		return nil, postcraft.Errorf(postcraft.EINVALID, "unknown mode %q", in.Mode)
	}

	if strings.TrimSpace(content.Body) == "" {
		return nil, postcraft.Errorf(postcraft.EEMPTYINPUT, MsgMissingContent)
	}

	key := in.Platform
	if key == "" {
		key = postcraft.DefaultPlatform
	}
	req, err := postcraft.BuildRequest(content.Title, content.Body, key)
	if err != nil {
		return nil, err
	}

	return &Draft{Title: content.Title, Body: content.Body, Request: req}, nil
}

// Compose prepares in, generates the post and measures it against the
// platform policy. Collaborator errors are returned unchanged.
func (c *Composer) Compose(ctx context.Context, in Input) (*postcraft.Post, error) {
	if c.Generator == nil {
		return nil, postcraft.Errorf(postcraft.EINTERNAL, "no generator configured")
	}

	draft, err := c.Prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	maxTokens := c.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxOutputTokens
	}

	text, err := c.Generator.Generate(ctx, draft.Request.InstructionText, postcraft.GenerateOptions{
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		return nil, err
	}

	policy, err := postcraft.LookupPolicy(draft.Request.PlatformKey)
	if err != nil {
		return nil, err
	}

	return &postcraft.Post{
		ID:       uuid.NewString(),
		Platform: policy.Key,
		Text:     text,
		Stats:    postcraft.Inspect(text, policy),
	}, nil
}
