// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package dispatch implements the target dispatcher: registry lookup,
// guarded-variable validation, up-front template rendering, and strictly
// sequential step execution with halt-on-first-failure semantics. A run
// moves through lookup -> guard check -> render -> step loop, and every
// abort path fires before the first external side effect it can prevent.
package dispatch
