// Package hostfacts provides pakmeta.HostFacts implementations: an OS-backed
// provider that inspects the running host, and a Static fixture for tests.
package hostfacts
