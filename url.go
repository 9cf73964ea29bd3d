package sitechat

import (
	"net/url"
	"strings"
)

// NormalizeURL returns the canonical form of an absolute http or https URL:
// lower-case scheme and host, no default port, no fragment, and "/" for an
// empty path.
// URLs are compared and fetched only in this form.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", Errorf(EINVALID, "URL %q is not absolute", rawURL)
	}
	return normalize(u)
}

// ResolveURL resolves href against base and normalizes the result.
func ResolveURL(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", Errorf(EINVALID, "invalid href %q: %v", href, err)
	}
	return normalize(base.ResolveReference(ref))
}

func normalize(u *url.URL) (string, error) {
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", Errorf(EINVALID, "unsupported scheme %q", u.Scheme)
	}
	n := *u
	n.Scheme = scheme
	n.Host = canonicalHost(scheme, u.Host)
	n.Fragment = ""
	n.RawFragment = ""
	if n.Path == "" {
		n.Path = "/"
	}
	return n.String(), nil
}

// SameOrigin reports whether a and b share scheme, host and port. An
// explicit default port equals an omitted one.
func SameOrigin(a, b *url.URL) bool {
	if !strings.EqualFold(a.Scheme, b.Scheme) {
		return false
	}
	scheme := strings.ToLower(a.Scheme)
	return canonicalHost(scheme, a.Host) == canonicalHost(scheme, b.Host)
}

// canonicalHost lower-cases host and drops the scheme's default port.
func canonicalHost(scheme, host string) string {
	host = strings.ToLower(host)
	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		return strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		return strings.TrimSuffix(host, ":443")
	}
	return host
}
