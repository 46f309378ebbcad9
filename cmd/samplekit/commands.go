// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ik5/samplekit"
	"github.com/ik5/samplekit/audio"
	"github.com/ik5/samplekit/batch"
	"github.com/ik5/samplekit/utils"
)

// cmdJoin combines mono left/right takes into stereo files, one pair
// given explicitly or every matching pair in a directory.
func cmdJoin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	dir := fs.String("d", "", `directory holding "name L.wav"/"name R.wav" pairs`)
	left := fs.String("l", "", "left channel mono file")
	right := fs.String("r", "", "right channel mono file")
	output := fs.String("o", "output_stereo.wav", "output file in single pair mode")
	workers := fs.Int("j", 0, "parallel workers in directory mode, 0 means one per CPU")
	fs.Parse(args)

	if *dir == "" {
		if *left == "" || *right == "" {
			return fmt.Errorf("join needs either -d or both -l and -r")
		}

		return joinPair(batch.Pair{Left: *left, Right: *right, Output: *output})
	}

	pairs, err := batch.FindChannelPairs(*dir)
	if err != nil {
		return err
	}

	if len(pairs) == 0 {
		return fmt.Errorf("no channel pairs in %s", *dir)
	}

	byLeft := make(map[string]batch.Pair, len(pairs))
	files := make([]string, 0, len(pairs))

	for _, p := range pairs {
		byLeft[p.Left] = p
		files = append(files, p.Left)
	}

	results := batch.Run(ctx, files, *workers, func(file string) error {
		return joinPair(byLeft[file])
	})

	if failed := batch.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d pairs failed", len(failed), len(results))
	}

	return nil
}

func joinPair(p batch.Pair) error {
	left, err := samplekit.DecodeFile(p.Left)
	if err != nil {
		return err
	}

	right, err := samplekit.DecodeFile(p.Right)
	if err != nil {
		return err
	}

	stereo, err := audio.JoinStereo(left, right)
	if err != nil {
		return err
	}

	if err := samplekit.EncodeFile(p.Output, stereo); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"op":     "join",
		"file":   p.Output,
		"frames": stereo.Frames(),
	}).Info("joined stereo pair")

	return nil
}

// cmdTrim removes trailing silence from one file or a directory.
func cmdTrim(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trim", flag.ExitOnError)
	file := fs.String("f", "", "audio file to trim")
	dir := fs.String("d", "", "directory of audio files to trim")
	threshold := fs.Float64("t", -60, "silence threshold in dB below full scale")
	minTail := fs.Float64("m", 0.5, "minimum trailing silence in seconds before trimming")
	output := fs.String("o", "", "output file in single file mode, default <name>_trimmed<ext>")
	workers := fs.Int("j", 0, "parallel workers in directory mode, 0 means one per CPU")
	fs.Parse(args)

	spec := audio.TrimSpec{ThresholdDB: *threshold, MinTailSeconds: *minTail}

	trim := func(file, output string) error {
		buf, err := samplekit.DecodeFile(file)
		if err != nil {
			return err
		}

		trimmed, err := audio.TrimTail(buf, spec)
		if err != nil {
			return err
		}

		if err := samplekit.EncodeFile(output, trimmed); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"op":      "trim",
			"file":    file,
			"removed": buf.Frames() - trimmed.Frames(),
		}).Info("trimmed trailing silence")

		return nil
	}

	switch {
	case *file != "":
		out := *output
		if out == "" {
			out = outputName(*file, "trimmed")
		}

		return trim(*file, out)
	case *dir != "":
		return runBatch(ctx, *dir, *workers, func(file string) error {
			return trim(file, outputName(file, "trimmed"))
		})
	default:
		return fmt.Errorf("trim needs -f or -d")
	}
}

// cmdSlice cuts loops into bar-length segments numbered from one.
func cmdSlice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slice", flag.ExitOnError)
	file := fs.String("f", "", "audio file to slice")
	dir := fs.String("d", "", "directory of audio files to slice")
	bpm := fs.Float64("b", 120, "tempo in BPM")
	bars := fs.Int("a", 2, "bars per slice")
	workers := fs.Int("j", 0, "parallel workers in directory mode, 0 means one per CPU")
	fs.Parse(args)

	spec := audio.SliceSpec{BPM: *bpm, BarsPerSlice: *bars}

	slice := func(file string) error {
		buf, err := samplekit.DecodeFile(file)
		if err != nil {
			return err
		}

		slices, err := audio.SliceBeats(buf, spec)
		if err != nil {
			return err
		}

		for i, s := range slices {
			if err := samplekit.EncodeFile(sliceName(file, i+1), s); err != nil {
				return err
			}
		}

		logrus.WithFields(logrus.Fields{
			"op":     "slice",
			"file":   file,
			"slices": len(slices),
		}).Info("sliced into segments")

		return nil
	}

	switch {
	case *file != "":
		return slice(*file)
	case *dir != "":
		return runBatch(ctx, *dir, *workers, slice)
	default:
		return fmt.Errorf("slice needs -f or -d")
	}
}

// cmdNormalize scales files onto an exact peak level.
func cmdNormalize(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	file := fs.String("f", "", "audio file to normalize")
	dir := fs.String("d", "", "directory of audio files to normalize")
	peak := fs.Float64("p", -0.1, "target peak level in dB, at most 0")
	output := fs.String("o", "output_normalized.wav", "output file in single file mode")
	workers := fs.Int("j", 0, "parallel workers in directory mode, 0 means one per CPU")
	fs.Parse(args)

	spec := audio.NormalizeSpec{TargetPeakDB: *peak}

	normalize := func(file, output string) error {
		buf, err := samplekit.DecodeFile(file)
		if err != nil {
			return err
		}

		normalized, err := audio.Normalize(buf, spec)
		if err != nil {
			return err
		}

		if err := samplekit.EncodeFile(output, normalized); err != nil {
			return err
		}

		gainDB := 0.0
		if p := buf.Peak(); p > 0 {
			gainDB = spec.TargetPeakDB - utils.LinearToDB(p)
		}

		logrus.WithFields(logrus.Fields{
			"op":      "normalize",
			"file":    file,
			"gain_db": fmt.Sprintf("%+.2f", gainDB),
		}).Info("normalized peak")

		return nil
	}

	switch {
	case *file != "":
		return normalize(*file, *output)
	case *dir != "":
		return runBatch(ctx, *dir, *workers, func(file string) error {
			return normalize(file, outputName(file, "normalized"))
		})
	default:
		return fmt.Errorf("normalize needs -f or -d")
	}
}

// cmdConvert changes sample rate and bit depth.
func cmdConvert(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	file := fs.String("f", "", "audio file to convert")
	dir := fs.String("d", "", "directory of audio files to convert")
	rate := fs.Int("s", 44100, "target sample rate in Hz")
	depth := fs.Int("b", 16, "target bit depth: 16, 24 or 32")
	output := fs.String("o", "output_converted.wav", "output file in single file mode")
	workers := fs.Int("j", 0, "parallel workers in directory mode, 0 means one per CPU")
	fs.Parse(args)

	spec := audio.ConvertSpec{SampleRate: *rate, BitDepth: *depth}

	convert := func(file, output string) error {
		buf, err := samplekit.DecodeFile(file)
		if err != nil {
			return err
		}

		converted, err := audio.Convert(buf, spec)
		if err != nil {
			return err
		}

		if err := samplekit.EncodeFile(output, converted); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"op":    "convert",
			"file":  file,
			"rate":  converted.SampleRate(),
			"depth": converted.BitDepth(),
		}).Info("converted format")

		return nil
	}

	switch {
	case *file != "":
		return convert(*file, *output)
	case *dir != "":
		return runBatch(ctx, *dir, *workers, func(file string) error {
			return convert(file, outputName(file, "converted"))
		})
	default:
		return fmt.Errorf("convert needs -f or -d")
	}
}

// cmdRename lays a directory's files out on consecutive MIDI notes,
// previewing by default.
func cmdRename(args []string) error {
	fs := flag.NewFlagSet("rename", flag.ExitOnError)
	dir := fs.String("d", "", "directory of sample files to lay out")
	outDir := fs.String("O", "", "output directory, default alongside the originals")
	startNote := fs.Int("n", 35, "first MIDI note, 35 is the GM acoustic bass drum")
	format := fs.String("F", batch.DefaultNameFormat, "name template over {name} {note} {drum} {ext}")
	apply := fs.Bool("apply", false, "perform the renames instead of previewing them")
	overwrite := fs.Bool("overwrite", false, "replace existing target files")
	fs.Parse(args)

	if *dir == "" {
		return fmt.Errorf("rename needs -d")
	}

	out := *outDir
	if out == "" {
		out = *dir
	}

	plan, err := batch.PlanRenames(*dir, out, batch.RenameSpec{
		StartNote:  *startNote,
		NameFormat: *format,
	})
	if err != nil {
		return err
	}

	if !*apply {
		for _, r := range plan {
			fmt.Printf("%s -> %s\n", r.From, r.To)
		}

		fmt.Printf("%d files planned; run again with -apply to rename them\n", len(plan))

		return nil
	}

	applied, err := batch.ApplyRenames(plan, *overwrite)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"op":    "rename",
		"files": applied,
	}).Info("renamed sample files")

	return nil
}
