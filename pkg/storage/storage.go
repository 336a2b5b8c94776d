// Package storage resolves object references stored on profiles into
// public URLs served by the object storage bucket.
package storage

import (
	"net/url"
	"strings"
)

// PublicURL returns ref unchanged when it is already an absolute URL,
// otherwise joins it onto baseURL. An empty ref yields "".
func PublicURL(baseURL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	if baseURL == "" {
		return ref
	}
	joined, err := url.JoinPath(baseURL, strings.TrimPrefix(ref, "/"))
	if err != nil {
		return ref
	}
	return joined
}
