// Package validation checks user-supplied URLs before the fetchers are
// pointed at them.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ValidateExternalURL verifies that raw is an absolute http or https URL
// addressing a public host. Loopback, private and link-local targets are
// rejected so a subscription can never steer the fetcher at internal
// services.
func ValidateExternalURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url format")
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("url scheme must be http or https")
	}

	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "" {
		return fmt.Errorf("url must include a host")
	}

	if hostname == "localhost" || strings.HasSuffix(hostname, ".localhost") {
		return fmt.Errorf("url must address a public host")
	}

	if ip := net.ParseIP(hostname); ip != nil && !isPublicIP(ip) {
		return fmt.Errorf("url must address a public host")
	}

	return nil
}

func isPublicIP(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified())
}
