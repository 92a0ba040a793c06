// Package uploader hands saved subtitle files to remote storage.
package uploader

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

// Uploader sends a local file to remote storage.
type Uploader interface {
	Upload(ctx context.Context, path string) error
}

// RcloneUploader uploads files with `rclone copyto`.
type RcloneUploader struct {
	bin    string
	remote string // e.g. "gdrive:subtitles"
	log    *slog.Logger
}

// NewRcloneUploader creates an uploader targeting the given rclone remote.
func NewRcloneUploader(bin, remote string, log *slog.Logger) *RcloneUploader {
	if log == nil {
		log = slog.Default()
	}
	return &RcloneUploader{
		bin:    bin,
		remote: strings.TrimSuffix(remote, "/"),
		log:    log.With("component", "uploader"),
	}
}

// Upload copies path to the remote, keeping its base name.
func (u *RcloneUploader) Upload(ctx context.Context, path string) error {
	target := u.remote + "/" + filepath.Base(path)
	u.log.Debug("uploading", "path", path, "target", target)

	cmd := exec.CommandContext(ctx, u.bin, "copyto", path, target)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("rclone copyto %s: %w: %s", path, err, strings.TrimSpace(string(out)))
	}
	return nil
}
