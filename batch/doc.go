// SPDX-License-Identifier: EPL-2.0

/*
Package batch orchestrates processing over directories of sample files.

The audio transforms are pure functions over in-memory buffers, so batch
work is embarrassingly parallel: Run schedules one file per worker with
no shared state and collects per-file results, and a failure in one file
never stops the others.

	files, err := batch.Files(dir)
	if err != nil {
		return err
	}

	results := batch.Run(ctx, files, 0, func(file string) error {
		buf, err := samplekit.DecodeFile(file)
		if err != nil {
			return err
		}

		trimmed, err := audio.TrimTail(buf, spec)
		if err != nil {
			return err
		}

		return samplekit.EncodeFile(outputName(file), trimmed)
	})

	if failed := batch.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed", len(failed), len(results))
	}

# Channel Pairs

Recorders that capture stereo as two mono files name them "<name> L.wav"
and "<name> R.wav". FindChannelPairs discovers those pairs so they can be
joined into "<name>_stereo.wav".

# MIDI Note Renaming

Hardware samplers map one file per MIDI note. PlanRenames lines a
directory's files up against consecutive notes, naming each after the
General MIDI drum on that note:

	plan, err := batch.PlanRenames(dir, outDir, batch.RenameSpec{StartNote: 35})
	// kick.wav  -> kick_035_Acoustic_Bass_Drum.wav
	// snare.wav -> snare_036_Bass_Drum_1.wav

The plan is a preview; ApplyRenames performs it.
*/
package batch
