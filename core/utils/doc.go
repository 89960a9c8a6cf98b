// Package utils provides loose type conversion helpers for query parameters
// and JSON payloads, where values may arrive as strings, numbers or bytes.
package utils
