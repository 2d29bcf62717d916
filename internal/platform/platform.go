package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a platform name does not match any supported platform.
var ErrUnknown = errors.New("unknown platform")

// Platform identifies a target social network.
type Platform uint8

const (
	Instagram Platform = iota
	Twitter
	LinkedIn
	TikTok
	Facebook

	count
)

var names = [count]string{"instagram", "twitter", "linkedin", "tiktok", "facebook"}

var displayNames = [count]string{"Instagram", "Twitter", "LinkedIn", "TikTok", "Facebook"}

// All returns every platform in declaration order.
func All() []Platform {
	out := make([]Platform, 0, count)
	for p := Platform(0); p < count; p++ {
		out = append(out, p)
	}
	return out
}

// Parse resolves a platform name (case-insensitive). "x" is accepted for Twitter.
func Parse(s string) (Platform, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "x" {
		return Twitter, nil
	}
	for i, n := range names {
		if n == v {
			return Platform(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Valid reports whether p is one of the declared platforms.
func (p Platform) Valid() bool { return p < count }

func (p Platform) String() string {
	if !p.Valid() {
		return fmt.Sprintf("platform(%d)", uint8(p))
	}
	return names[p]
}

// DisplayName returns the human-facing name used in warnings.
func (p Platform) DisplayName() string {
	if !p.Valid() {
		return p.String()
	}
	return displayNames[p]
}

func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, uint8(p))
	}
	return []byte(names[p]), nil
}

func (p *Platform) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
