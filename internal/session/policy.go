package session

// ProvisioningPolicy carries the fixed provisioning constants used when
// backing records have to be created on the fly. It is built once at
// startup from configuration and never mutated afterwards; orchestration
// code receives it by value and must not reach for ambient globals.
type ProvisioningPolicy struct {
	// Password is both the temporary password used when provisioning
	// provider accounts and the permanent password submitted on the
	// first-login challenge.
	Password string

	// AnonymousPrefix prefixes the randomized subject identifier
	// generated for anonymous sessions.
	AnonymousPrefix string

	// AnonymousTTL is the fixed lifetime, in seconds, reported for
	// anonymous sessions regardless of what the provider says.
	AnonymousTTL int

	// FallbackTTL is reported for identified sessions when the provider
	// omits a lifetime and the issued token carries no usable expiry.
	FallbackTTL int
}
