// SPDX-License-Identifier: MPL-2.0

// Package tui provides the interactive environment picker, built on
// Bubble Tea and the Bubbles list component. Cancellation (esc/ctrl+c) is a
// first-class outcome: the picker then reports no selection and no error.
package tui
