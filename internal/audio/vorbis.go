package audio

import "strings"

// commentList manipulates Vorbis "KEY=value" entries, shared by the
// FLAC and Ogg editors. Keys compare case-insensitively; writes store
// them uppercase, matching common tagger output.
type commentList struct {
	entries []string
}

func splitComment(entry string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(entry, "=")
	return key, value, ok
}

// get returns the value of the first entry with the given key.
func (c *commentList) get(key string) string {
	for _, entry := range c.entries {
		if k, v, ok := splitComment(entry); ok && strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// set removes every entry with the given key, then appends the new
// value unless it is empty.
func (c *commentList) set(key, value string) {
	kept := c.entries[:0]
	for _, entry := range c.entries {
		if k, _, ok := splitComment(entry); ok && strings.EqualFold(k, key) {
			continue
		}
		kept = append(kept, entry)
	}
	c.entries = kept

	if value != "" {
		c.entries = append(c.entries, strings.ToUpper(key)+"="+value)
	}
}
