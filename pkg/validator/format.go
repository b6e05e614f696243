package validator

import (
	"net/mail"
	"regexp"
	"slices"
	"strings"
)

// One separator throughout: all colons or all hyphens.
var macAddressRegex = regexp.MustCompile(`^(?:(?:[0-9A-Fa-f]{2}:){5}|(?:[0-9A-Fa-f]{2}-){5})[0-9A-Fa-f]{2}$`)

// EmailOptions configures an EmailValidator.
type EmailOptions struct {
	// Domain restricts addresses to hosts ending with one of these domains.
	Domain []string

	Message string
	Catalog Catalog
}

// EmailValidator accepts bare addresses of the form local-part@domain.tld.
type EmailValidator struct {
	domains []string
	message string
	catalog Catalog
}

func NewEmailValidator(opts EmailOptions) *EmailValidator {
	return &EmailValidator{
		domains: lowerAll(opts.Domain),
		message: opts.Message,
		catalog: opts.Catalog,
	}
}

func (v *EmailValidator) ValidateEach(record Record, attribute string, value any) {
	if v.Valid(value) {
		return
	}
	report(record, attribute, v.message, v.catalog, KeyEmail, map[string]any{"attribute": attribute})
}

// Valid reports whether value is a string holding an acceptable address.
func (v *EmailValidator) Valid(value any) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	// Display names and angle brackets are rejected.
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	if len(v.domains) == 0 {
		return true
	}
	domain = strings.ToLower(domain)
	return slices.ContainsFunc(v.domains, func(d string) bool {
		return domain == d || strings.HasSuffix(domain, "."+d)
	})
}

// MACAddressOptions configures a MACAddressValidator.
type MACAddressOptions struct {
	Message string
	Catalog Catalog
}

// MACAddressValidator accepts six colon or hyphen separated hex octets.
type MACAddressValidator struct {
	message string
	catalog Catalog
}

func NewMACAddressValidator(opts MACAddressOptions) *MACAddressValidator {
	return &MACAddressValidator{message: opts.Message, catalog: opts.Catalog}
}

func (v *MACAddressValidator) ValidateEach(record Record, attribute string, value any) {
	if v.Valid(value) {
		return
	}
	report(record, attribute, v.message, v.catalog, KeyMACAddress, map[string]any{"attribute": attribute})
}

func (v *MACAddressValidator) Valid(value any) bool {
	s, ok := value.(string)
	return ok && macAddressRegex.MatchString(s)
}
