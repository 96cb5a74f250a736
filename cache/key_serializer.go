package cache

import "strings"

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// segmentEscaper makes sure no segment can contain KeySeparator, so a bucket
// or entity prefix can always be matched with strings.HasPrefix.
var segmentEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

// defaultKeySerializer joins escaped segments with KeySeparator.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey builds a cache key from the given segments. An empty trailing
// segment yields the prefix shared by every key below the preceding ones,
// e.g. SerializeKey("dimension", "") == "dimension::".
func (s *defaultKeySerializer) SerializeKey(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}

	parts := make([]string, len(segments))
	for i, segment := range segments {
		parts[i] = segmentEscaper.Replace(segment)
	}

	return strings.Join(parts, KeySeparator)
}
