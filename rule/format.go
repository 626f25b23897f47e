package rule

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ValidEmail rejects values that are not plain email addresses suitable for
// typical web use: a single RFC 5322 address with a dotted, non-empty domain.
func ValidEmail() Rule[string] {
	return ValidOnlyIf(func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return false
		}

		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" {
			return false
		}

		if !strings.Contains(domain, ".") {
			return false
		}
		for _, part := range strings.Split(domain, ".") {
			if part == "" {
				return false
			}
		}

		return true
	}, "must be a valid email address")
}

// ValidURL rejects values that are not absolute URLs with a scheme and host.
func ValidURL() Rule[string] {
	return ValidOnlyIf(func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		u, err := url.ParseRequestURI(value)
		if err != nil {
			return false
		}

		return u.Scheme != "" && u.Host != ""
	}, "must be a valid URL")
}

// ValidUUID rejects values that are not canonical 36-character UUIDs.
// Length and hyphen positions are checked before parsing to reject garbage
// cheaply.
func ValidUUID() Rule[string] {
	return ValidOnlyIf(func(value string) bool {
		if len(value) != 36 {
			return false
		}
		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return false
		}

		_, err := uuid.Parse(value)
		return err == nil
	}, "must be a valid UUID")
}
