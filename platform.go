package postcraft

import "fmt"

// PlatformKey identifies a supported social platform.
type PlatformKey string

// Supported platforms. These identifiers are the only external contract
// fixed by the core; callers must not invent others.
const (
	PlatformLinkedIn  PlatformKey = "linkedin"
	PlatformSubstack  PlatformKey = "substack"
	PlatformBluesky   PlatformKey = "bluesky"
	PlatformFacebook  PlatformKey = "facebook"
	PlatformInstagram PlatformKey = "instagram"
)

// DefaultPlatform is the platform presentation layers select when the user
// has not picked one. The core never substitutes it for an unknown key.
const DefaultPlatform = PlatformLinkedIn

// HashtagRule bounds how many hashtags a post should carry.
type HashtagRule struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PlatformPolicy describes a platform's length target and formatting rules.
type PlatformPolicy struct {
	Key         PlatformKey `json:"key"`
	DisplayName string      `json:"displayName"`

	// OptimalLength is a human-readable target range such as "150-300 chars".
	// It is advisory and never enforced.
	OptimalLength string `json:"optimalLength"`

	// MaxLength is the platform's advisory upper bound in characters.
	MaxLength int `json:"maxLength"`

	// Summary is the short best-practices line shown next to the platform.
	Summary string `json:"summary"`

	Hook         string      `json:"hook"`
	Tone         string      `json:"tone"`
	Hashtags     HashtagRule `json:"hashtags"`
	CallToAction string      `json:"callToAction"`
	Emoji        string      `json:"emoji"`
}

// StyleRules returns the policy's instructions in a fixed order: hook
// placement, tone, hashtag count, call to action, emoji usage.
func (p PlatformPolicy) StyleRules() []string {
	return []string{
		p.Hook,
		p.Tone,
		p.hashtagRule(),
		p.CallToAction,
		p.Emoji,
	}
}

func (p PlatformPolicy) hashtagRule() string {
	switch {
	case p.Hashtags.Max == 0:
		return "Do not use hashtags"
	case p.Hashtags.Min == p.Hashtags.Max:
		return fmt.Sprintf("Include exactly %d relevant hashtags", p.Hashtags.Max)
	default:
		return fmt.Sprintf("Include %d-%d relevant hashtags", p.Hashtags.Min, p.Hashtags.Max)
	}
}

// policies holds one immutable entry per platform. Values are copied out on
// lookup so callers can never mutate the table.
var policies = map[PlatformKey]PlatformPolicy{
	PlatformLinkedIn: {
		Key:           PlatformLinkedIn,
		DisplayName:   "LinkedIn",
		OptimalLength: "150-300 chars",
		MaxLength:     3000,
		Summary:       "Hook in first 2 lines, professional tone, 3-5 hashtags, question to drive engagement",
		Hook:          "Put the hook in the first 2 lines so it shows before the \"see more\" cut",
		Tone:          "Keep a professional, insightful tone",
		Hashtags:      HashtagRule{Min: 3, Max: 5},
		CallToAction:  "End with a question that drives engagement in the comments",
		Emoji:         "Use emojis sparingly, at most one or two",
	},
	PlatformSubstack: {
		Key:           PlatformSubstack,
		DisplayName:   "Substack Notes",
		OptimalLength: "200-400 chars",
		MaxLength:     500,
		Summary:       "Conversational, thought-provoking, encourage subscriptions",
		Hook:          "Open with a thought-provoking observation",
		Tone:          "Write in a conversational, personal voice",
		Hashtags:      HashtagRule{Min: 0, Max: 0},
		CallToAction:  "Encourage readers to subscribe for the full piece",
		Emoji:         "Avoid emojis unless one adds real meaning",
	},
	PlatformBluesky: {
		Key:           PlatformBluesky,
		DisplayName:   "Bluesky",
		OptimalLength: "200-280 chars",
		MaxLength:     300,
		Summary:       "Authentic, conversational, no hashtags needed",
		Hook:          "Lead with the most interesting idea in the first sentence",
		Tone:          "Sound authentic and conversational, never salesy",
		Hashtags:      HashtagRule{Min: 0, Max: 0},
		CallToAction:  "Invite replies by asking about the reader's own experience",
		Emoji:         "Use at most one emoji",
	},
	PlatformFacebook: {
		Key:           PlatformFacebook,
		DisplayName:   "Facebook",
		OptimalLength: "40-80 chars",
		MaxLength:     2000,
		Summary:       "Short hook, visual storytelling, encourage comments",
		Hook:          "Start with a short, punchy hook",
		Tone:          "Tell the story visually and warmly",
		Hashtags:      HashtagRule{Min: 0, Max: 2},
		CallToAction:  "Encourage readers to share their thoughts in the comments",
		Emoji:         "Use a few emojis to add visual rhythm",
	},
	PlatformInstagram: {
		Key:           PlatformInstagram,
		DisplayName:   "Instagram",
		OptimalLength: "125-150 chars",
		MaxLength:     2200,
		Summary:       "Strong hook, visual appeal, strategic hashtags, stories mention",
		Hook:          "Open with a strong hook before the caption truncates",
		Tone:          "Keep it visual, upbeat and inspiring",
		Hashtags:      HashtagRule{Min: 5, Max: 10},
		CallToAction:  "Point readers to the link in bio and mention the stories",
		Emoji:         "Use emojis freely to add visual appeal",
	},
}

// platformOrder is the canonical presentation order.
var platformOrder = []PlatformKey{
	PlatformLinkedIn,
	PlatformSubstack,
	PlatformBluesky,
	PlatformFacebook,
	PlatformInstagram,
}

// Platforms returns all supported platform keys in canonical order.
func Platforms() []PlatformKey {
	keys := make([]PlatformKey, len(platformOrder))
	copy(keys, platformOrder)
	return keys
}

// Policies returns every platform policy in canonical order.
func Policies() []PlatformPolicy {
	out := make([]PlatformPolicy, 0, len(platformOrder))
	for _, key := range platformOrder {
		out = append(out, policies[key])
	}
	return out
}

// LookupPolicy returns the policy for key.
// Returns EUNKNOWNPLATFORM if key is not one of the supported platforms.
func LookupPolicy(key PlatformKey) (PlatformPolicy, error) {
	policy, ok := policies[key]
	if !ok {
		return PlatformPolicy{}, Errorf(EUNKNOWNPLATFORM, "unknown platform %q", string(key))
	}
	return policy, nil
}

// ParsePlatform converts s into a PlatformKey. Matching is exact: empty
// strings and case variants such as "LinkedIn" are rejected.
func ParsePlatform(s string) (PlatformKey, error) {
	key := PlatformKey(s)
	if _, ok := policies[key]; !ok {
		return "", Errorf(EUNKNOWNPLATFORM, "unknown platform %q", s)
	}
	return key, nil
}

// Valid reports whether k is a supported platform.
func (k PlatformKey) Valid() bool {
	_, ok := policies[k]
	return ok
}
