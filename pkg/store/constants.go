// pkg/store/constants.go
package store

// KeyPrefix is the fixed tag prepended to every association key, so
// environment directories are recognizable inside a root.
const KeyPrefix = "venv"
