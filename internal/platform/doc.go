// Package platform maps raw platform identifiers and version strings to
// short marketing versions ("12.04.1" on ubuntu becomes "12.04").
//
// Classification is an explicit ordered table of rule families rather than a
// switch: each family names the platforms it covers and the truncation
// strategy it applies. First match wins; a platform matched by no family is
// an UnknownPlatformError, and a recognized windows platform with an
// unenumerated version is an UnknownPlatformVersionError.
package platform
