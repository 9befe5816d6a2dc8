// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package getsource fetches a source package into a local directory using
// the address forms Terraform users already know: git/hg/http(s)/s3/gcs
// URLs, shorthands like github.com/org/repo, plain filesystem paths, and
// the "//" subdirectory suffix.
package getsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"

	"github.com/hashicorp/planscape/internal/logging"
)

var goGetterDetectors = []getter.Detector{
	new(getter.GitHubDetector),
	new(getter.GitDetector),
	new(getter.BitBucketDetector),
	new(getter.GCSDetector),
	new(getter.S3Detector),
	new(getter.FileDetector),
}

var goGetterDecompressors = map[string]getter.Decompressor{
	"bz2": new(getter.Bzip2Decompressor),
	"gz":  new(getter.GzipDecompressor),
	"xz":  new(getter.XzDecompressor),
	"zip": new(getter.ZipDecompressor),

	"tar.bz2": new(getter.TarBzip2Decompressor),
	"tar.gz":  new(getter.TarGzipDecompressor),
	"tar.xz":  new(getter.TarXzDecompressor),
	"tbz2":    new(getter.TarBzip2Decompressor),
	"tgz":     new(getter.TarGzipDecompressor),
	"txz":     new(getter.TarXzDecompressor),
}

var goGetterGetters = map[string]getter.Getter{
	"file":  &getter.FileGetter{Copy: true},
	"gcs":   new(getter.GCSGetter),
	"git":   new(getter.GitGetter),
	"hg":    new(getter.HgGetter),
	"http":  new(getter.HttpGetter),
	"https": new(getter.HttpGetter),
	"s3":    new(getter.S3Getter),
}

// Fetch downloads the source package at src into the dst directory,
// creating it if needed. Local directory sources are copied rather than
// linked, so the result is always safe to modify.
func Fetch(ctx context.Context, src, dst string) error {
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}
	if !filepath.IsAbs(dst) {
		dst = filepath.Join(pwd, dst)
	}

	logging.NewLogger("getsource").Debug("fetching source package",
		"src", src,
		"dst", dst,
	)

	client := getter.Client{
		Ctx:           ctx,
		Src:           src,
		Dst:           dst,
		Pwd:           pwd,
		Mode:          getter.ClientModeDir,
		Detectors:     goGetterDetectors,
		Decompressors: goGetterDecompressors,
		Getters:       goGetterGetters,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("cannot fetch %q: %w", src, err)
	}
	return nil
}
