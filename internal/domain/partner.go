package domain

import "strings"

// PartnerID identifies a conversation partner, e.g. "alice@host" or
// "alice@host/laptop" when it carries a resource.
type PartnerID string

const resourceSeparator = "/"

func (p PartnerID) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// Bare drops the resource suffix: everything from the first "/" on.
// A leading "/" is skipped the same way a tokenizer would skip an empty token.
func (p PartnerID) Bare() PartnerID {
	raw := strings.TrimLeft(string(p), resourceSeparator)
	if idx := strings.Index(raw, resourceSeparator); idx >= 0 {
		raw = raw[:idx]
	}
	return PartnerID(raw)
}

func (p PartnerID) Resource() string {
	raw := strings.TrimLeft(string(p), resourceSeparator)
	if idx := strings.Index(raw, resourceSeparator); idx >= 0 {
		return raw[idx+1:]
	}
	return ""
}

func (p PartnerID) String() string {
	return string(p)
}
