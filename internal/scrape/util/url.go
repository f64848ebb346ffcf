package util

import "strings"

// CanonicalLink strips the query string from a listing URL. The
// stripped form is the dedup key, so tracking parameters never turn one
// listing into two entries.
func CanonicalLink(link string) string {
	if i := strings.IndexByte(link, '?'); i >= 0 {
		return link[:i]
	}
	return link
}
