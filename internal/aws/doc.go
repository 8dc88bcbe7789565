// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws wraps AWS SDK v2 config loading and the S3 object fetch used
// for s3:// manifest sources. Credential resolution always follows the
// standard shared-config chain so runctl sees the same account the wrapped
// AWS CLI commands do.
package aws
