// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types for venvctl.
//
// ActionableError carries what operation failed, which resource was
// involved, and suggestions for fixing it; ErrorContext is its builder.
// Guidance documents for recurring situations (no environments found, no
// project root capability) are kept as markdown and rendered with glamour.
package issue
