package validator

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// URLOptions configures a URLValidator. Empty lists accept anything.
type URLOptions struct {
	// Domain lists accepted top-level domains; the host must end with "." + one of them.
	Domain []string
	// Scheme lists accepted schemes.
	Scheme []string
	// Root requires an empty or "/" path with no query and no fragment.
	Root bool

	Message string
	Catalog Catalog
}

// URLValidator accepts absolute http and https URLs that match every configured criterion.
// The URL is never dereferenced.
type URLValidator struct {
	domains []string
	schemes []string
	root    bool
	message string
	catalog Catalog
}

func NewURLValidator(opts URLOptions) *URLValidator {
	return &URLValidator{
		domains: lowerAll(opts.Domain),
		schemes: lowerAll(opts.Scheme),
		root:    opts.Root,
		message: opts.Message,
		catalog: opts.Catalog,
	}
}

func (v *URLValidator) ValidateEach(record Record, attribute string, value any) {
	if v.Valid(value) {
		return
	}
	report(record, attribute, v.message, v.catalog, KeyURL, map[string]any{"attribute": attribute})
}

// Valid reports whether value is a string URL accepted by every criterion.
func (v *URLValidator) Valid(value any) bool {
	s, ok := value.(string)
	if !ok || strings.ContainsAny(s, unsafeURLChars) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || !validPort(u) {
		return false
	}
	return isHTTP(u) && v.validDomain(u) && v.validScheme(u) && (!v.root || isRoot(u))
}

// unsafeURLChars may not appear unescaped anywhere in an RFC 3986 URI.
const unsafeURLChars = " <>\"{}|\\^`\t\r\n"

// validPort accepts an empty port or a decimal number in 0-65535.
func validPort(u *url.URL) bool {
	p := u.Port()
	if p == "" {
		return true
	}
	_, err := strconv.ParseUint(p, 10, 16)
	return err == nil
}

func isHTTP(u *url.URL) bool {
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Hostname() != ""
	}
	return false
}

func (v *URLValidator) validDomain(u *url.URL) bool {
	if len(v.domains) == 0 {
		return true
	}
	host := strings.ToLower(u.Hostname())
	return slices.ContainsFunc(v.domains, func(tld string) bool {
		return strings.HasSuffix(host, "."+tld)
	})
}

func (v *URLValidator) validScheme(u *url.URL) bool {
	return len(v.schemes) == 0 || slices.Contains(v.schemes, strings.ToLower(u.Scheme))
}

func isRoot(u *url.URL) bool {
	return (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == ""
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
