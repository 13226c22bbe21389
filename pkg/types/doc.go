// Package types defines the entity constraints, the inventory entity kinds,
// the error taxonomy, and the configuration shared by the stockroom
// repository, snapshot stores, and CLI.
package types
