// Package stockroom exposes build metadata for the stockroom module.
package stockroom

// Version is the release version reported by the CLI.
const Version = "0.3.0"
