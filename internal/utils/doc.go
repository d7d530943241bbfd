// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Credential masking for anything printed or logged
//   - Terminal detection
package utils
