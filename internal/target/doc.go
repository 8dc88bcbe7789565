// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package target defines the target registry: named sequences of guarded
// command templates. Built-ins cover the common Terraform/AWS/quality
// shortcuts; manifests layer team-specific targets on top.
package target
