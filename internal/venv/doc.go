// SPDX-License-Identifier: MPL-2.0

// Package venv owns the activation state machine for Python environments.
//
// A Manager captures the process PATH once at construction (OriginalPath),
// resolves any environment inherited from the parent process, and from then
// on is the single owner of the active-environment slot. Activation rewrites
// PATH, VIRTUAL_ENV and the CONDA_* family per the environment's kind
// (conda-like vs virtualenv-like), flips the slot, and finally invokes an
// optional post-activation hook whose failure is isolated.
//
// PATH is always rebuilt from the captured baseline, so repeated switches
// never accumulate stale bin prefixes. Construction-once semantics: create
// exactly one Manager per process, before any activation.
package venv
