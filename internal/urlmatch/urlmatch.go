// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

// Package urlmatch classifies how well a stored login URL matches the
// URL a service identifier resolves to. Only Matched drives autofill
// ranking; Ambiguous exists for callers that want to surface "looks
// related" suggestions separately.
package urlmatch

import (
	"context"
	"net/url"
	"strings"

	"github.com/passhold/vault-engine/internal/logger"
	"github.com/passhold/vault-engine/models"
)

// Result is the three-way outcome of a URL comparison.
type Result int

const (
	// NotMatched means the two URLs refer to unrelated services.
	NotMatched Result = iota

	// Matched means the stored URL serves the requested identifier.
	Matched

	// Ambiguous means the hosts share a registrable domain but neither
	// is a parent of the other, e.g. mail.example.com vs www.example.com.
	Ambiguous
)

// NormalizeServiceIdentifier turns an OS-provided service identifier
// into a comparable URL string. Domain identifiers get an https scheme
// prefix; URL identifiers pass through verbatim. Unrecognized future
// tag values also pass through verbatim so new OS versions degrade to
// exact matching instead of breaking.
func NormalizeServiceIdentifier(ctx context.Context, identifier models.ServiceIdentifier) string {
	switch identifier.Type {
	case models.ServiceIdentifierDomain:
		return "https://" + identifier.Identifier
	case models.ServiceIdentifierURL:
		return identifier.Identifier
	default:
		logger.FromContext(ctx).Warn().
			Str("func", "urlmatch.NormalizeServiceIdentifier").
			Int("type", int(identifier.Type)).
			Msg("unexpected service identifier type, using identifier verbatim")
		return identifier.Identifier
	}
}

// Match classifies candidateURL (a URL stored on a login item) against
// requestedURL (a normalized service identifier). Either side failing
// to parse, or lacking a host, yields NotMatched.
func Match(candidateURL, requestedURL string) Result {
	candidate, err := url.Parse(candidateURL)
	if err != nil || candidate.Host == "" {
		return NotMatched
	}
	requested, err := url.Parse(requestedURL)
	if err != nil || requested.Host == "" {
		return NotMatched
	}

	if !schemesCompatible(candidate.Scheme, requested.Scheme) {
		return NotMatched
	}

	candidateHost := strings.ToLower(candidate.Hostname())
	requestedHost := strings.ToLower(requested.Hostname())

	if candidateHost == requestedHost {
		return Matched
	}

	// A subdomain of the requested host (or the reverse) still serves
	// the same credential.
	if strings.HasSuffix(candidateHost, "."+requestedHost) || strings.HasSuffix(requestedHost, "."+candidateHost) {
		return Matched
	}

	if registrableDomain(candidateHost) == registrableDomain(requestedHost) && registrableDomain(candidateHost) != "" {
		return Ambiguous
	}

	return NotMatched
}

// schemesCompatible treats http and https as interchangeable for
// matching purposes; anything else must match exactly.
func schemesCompatible(a, b string) bool {
	if isWebScheme(a) && isWebScheme(b) {
		return true
	}
	return a == b
}

func isWebScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}

// registrableDomain approximates the eTLD+1 of a host as its last two
// labels. Good enough for sibling-subdomain detection; hosts with
// fewer than two labels (localhost, bare TLDs) return "".
func registrableDomain(host string) string {
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return ""
	}
	return strings.Join(labels[len(labels)-2:], ".")
}
