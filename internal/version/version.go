// Package version contains the version of this repository.
package version

// Version is the version of this repository.
const Version = "0.1.0"
