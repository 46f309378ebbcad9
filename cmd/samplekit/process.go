// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/samplekit/batch"
)

// outputName places a processed file next to the input, the original
// name plus a suffix: "kick.wav" becomes "kick_trimmed.wav".
func outputName(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + suffix + ext
}

// sliceName numbers one segment of a sliced file, counting from one:
// "break.wav" and 3 become "break_03.wav".
func sliceName(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%02d%s", strings.TrimSuffix(path, ext), n, ext)
}

// runBatch feeds every supported file in dir through fn on the worker
// pool and folds the outcome into one error. Per-file failures are
// already logged by the pool; the summary names only the counts.
func runBatch(ctx context.Context, dir string, workers int, fn func(file string) error) error {
	files, err := batch.Files(dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no supported audio files in %s", dir)
	}

	results := batch.Run(ctx, files, workers, fn)

	if failed := batch.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed", len(failed), len(results))
	}

	return nil
}
