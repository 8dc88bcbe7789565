// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package manifest loads user-defined target files and merges them into the
// registry. Three formats are supported, chosen by extension: YAML, HCL
// (target "name" { ... } blocks), and JSON. Sources may be local paths or
// s3:// URIs, the latter cached locally between runs.
package manifest
