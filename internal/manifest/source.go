// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runctl/runctl/internal/aws"
	"github.com/runctl/runctl/internal/cacheutil"
	"github.com/runctl/runctl/internal/log"
)

const s3Scheme = "s3://"

// Fetch returns the raw bytes of a manifest source. Local paths are read
// directly; s3:// URIs go through the shared AWS config chain with a local
// cache in front (RUNCTL_CACHE=0 forces a fresh fetch every time).
func Fetch(ctx context.Context, src string) ([]byte, error) {
	if !strings.HasPrefix(src, s3Scheme) {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", src, err)
		}
		return data, nil
	}

	bucket, key, err := splitS3URI(src)
	if err != nil {
		return nil, err
	}

	if entry, ok := cacheutil.Read([]string{"manifests"}, src); ok {
		return entry.Data, nil
	}

	cfg, err := aws.LoadAWSConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for %s: %w", src, err)
	}

	data, err := aws.FetchObject(ctx, aws.NewS3(cfg), bucket, key)
	if err != nil {
		return nil, err
	}

	if err := cacheutil.Write([]string{"manifests"}, src, data); err != nil {
		log.Warnf("failed to cache manifest %s: %v", src, err)
	}
	return data, nil
}

// splitS3URI splits s3://bucket/key into its parts.
func splitS3URI(src string) (string, string, error) {
	rest := strings.TrimPrefix(src, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("malformed s3 manifest source: %s", src)
	}
	return bucket, key, nil
}
