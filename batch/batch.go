// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// audioExtensions are the file types directory discovery picks up: the
// formats the bundled codecs can both read and write, so every batch
// operation can save its result next to the input.
var audioExtensions = map[string]bool{
	".wav":  true,
	".flac": true,
	".aiff": true,
	".aif":  true,
}

// Files lists the supported audio files directly inside dir, sorted by
// name. It does not recurse.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var files []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// Result records the outcome of processing one file.
type Result struct {
	File string
	Err  error
}

// Run feeds files to fn on a pool of workers and collects one Result per
// processed file, sorted by file name. Every file gets its own buffer and
// there is no cross-file state, so order of execution does not matter.
//
// A failing file is logged and does not stop the rest; callers inspect
// the results (see Failed) to decide their exit code. Cancelling ctx
// stops new files from being picked up, so files never started are
// absent from the result set. workers < 1 means one worker per CPU.
func Run(ctx context.Context, files []string, workers int, fn func(file string) error) []Result {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan string)
	results := make(chan Result, len(files))

	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for file := range jobs {
				err := fn(file)
				if err != nil {
					logrus.WithField("file", file).WithError(err).Error("processing failed")
				}

				results <- Result{File: file, Err: err}
			}
		}()
	}

feed:
	for _, file := range files {
		select {
		case <-ctx.Done():
			break feed
		default:
		}

		select {
		case jobs <- file:
		case <-ctx.Done():
			break feed
		}
	}

	close(jobs)
	wg.Wait()
	close(results)

	collected := make([]Result, 0, len(files))
	for r := range results {
		collected = append(collected, r)
	}

	slices.SortFunc(collected, func(a, b Result) int {
		return strings.Compare(a.File, b.File)
	})

	return collected
}

// Failed filters a result set down to the entries that carry an error.
func Failed(results []Result) []Result {
	var failed []Result

	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}

	return failed
}
