// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package models

// AutoFillCredential is a denormalized per-URL projection of a login
// item used solely to rank OS-level credential suggestions. A login
// item with several matched URLs produces one row per URL. Rows are
// overwritten on every autofill or edit and only disappear through a
// full re-population.
type AutoFillCredential struct {
	ShareID  string
	ItemID   string
	Username string
	URL      string

	// LastUseTime is the ranking hint, epoch seconds. Higher sorts first
	// in the OS credential picker.
	LastUseTime int64
}

// ServiceIdentifierType tags how the OS expressed a service identifier.
type ServiceIdentifierType int

const (
	// ServiceIdentifierDomain is a bare domain such as "a.example.com".
	ServiceIdentifierDomain ServiceIdentifierType = 0

	// ServiceIdentifierURL is a full URL.
	ServiceIdentifierURL ServiceIdentifierType = 1
)

// ServiceIdentifier is the OS-provided description of the service a
// credential request is for. Values with an unrecognized Type are
// treated verbatim, keeping the engine forward-compatible with new OS
// identifier kinds.
type ServiceIdentifier struct {
	Type       ServiceIdentifierType
	Identifier string
}

// OSRequestKind enumerates the credential request shapes the OS can
// hand to the autofill extension.
type OSRequestKind int

const (
	OSRequestPassword OSRequestKind = iota
	OSRequestPasskeyAssertion
	OSRequestOneTimeCode
	OSRequestPasskeyRegistration
	OSRequestUnknown
)

// CredentialIdentity is the identity payload of an OS credential
// request reduced to what the engine needs.
type CredentialIdentity struct {
	// RecordIdentifier is the opaque record token the extension attached
	// when it registered the credential, if any.
	RecordIdentifier *string

	// ServiceIdentifiers describe the requesting service.
	ServiceIdentifiers []ServiceIdentifier
}

// OSCredentialRequest is the raw request as delivered by the platform.
// Identity is declared as any because the platform contract only
// promises a *CredentialIdentity for recognized kinds; the normalizer
// checks the downcast instead of trusting it.
type OSCredentialRequest struct {
	Kind     OSRequestKind
	Identity any
}

// AutoFillRequestKind enumerates the supported normalized shapes.
type AutoFillRequestKind int

const (
	AutoFillPassword AutoFillRequestKind = iota
	AutoFillPasskey
	AutoFillOneTimeCode
)

// AutoFillRequest is the single internal representation of a supported
// OS credential request. It is created once per incoming request,
// immutable, and discarded when the autofill flow completes.
type AutoFillRequest struct {
	Kind     AutoFillRequestKind
	identity CredentialIdentity
}

// NewAutoFillRequest builds a normalized request from a verified
// identity payload.
func NewAutoFillRequest(kind AutoFillRequestKind, identity CredentialIdentity) AutoFillRequest {
	return AutoFillRequest{Kind: kind, identity: identity}
}

// RecordIdentifier returns the opaque record token of the request, or
// nil when the OS did not provide one.
func (r AutoFillRequest) RecordIdentifier() *string {
	return r.identity.RecordIdentifier
}

// ServiceIdentifiers returns the service identifiers of the request.
func (r AutoFillRequest) ServiceIdentifiers() []ServiceIdentifier {
	return r.identity.ServiceIdentifiers
}
