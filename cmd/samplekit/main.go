// SPDX-License-Identifier: EPL-2.0

// Command samplekit prepares audio sample libraries from the command
// line. It joins split mono recordings into stereo files, trims trailing
// silence, slices loops into bar-length segments, normalizes peaks,
// converts sample rates and bit depths, and lays sample sets out on MIDI
// drum notes for hardware samplers.
//
// Every command works on a single file (or pair) or, with -d, on a whole
// directory at once. Directory mode processes files in parallel and keeps
// going when one file fails; the exit code is zero only when every file
// succeeded.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

const usageText = `usage: samplekit <command> [flags]

Commands:
  join       combine "name L"/"name R" mono pairs into stereo files
  trim       cut trailing silence, landing the cut on a zero crossing
  slice      cut loops into bar-length segments
  normalize  scale samples to an exact peak level
  convert    change sample rate and bit depth
  rename     lay sample files out on MIDI drum notes

Run "samplekit <command> -h" for the flags of one command.
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

// run dispatches to one command and maps its outcome onto an exit code.
func run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	var err error

	switch args[0] {
	case "join":
		err = cmdJoin(ctx, args[1:])
	case "trim":
		err = cmdTrim(ctx, args[1:])
	case "slice":
		err = cmdSlice(ctx, args[1:])
	case "normalize":
		err = cmdNormalize(ctx, args[1:])
	case "convert":
		err = cmdConvert(ctx, args[1:])
	case "rename":
		err = cmdRename(args[1:])
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()

		return 1
	}

	if err != nil {
		logrus.WithField("command", args[0]).Error(err)
		return 1
	}

	return 0
}
