// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// gmDrumMap names the General MIDI percussion notes, 35 through 81.
var gmDrumMap = map[int]string{
	35: "Acoustic Bass Drum",
	36: "Bass Drum 1",
	37: "Side Stick",
	38: "Acoustic Snare",
	39: "Hand Clap",
	40: "Electric Snare",
	41: "Low Floor Tom",
	42: "Closed Hi-Hat",
	43: "High Floor Tom",
	44: "Pedal Hi-Hat",
	45: "Low Tom",
	46: "Open Hi-Hat",
	47: "Low-Mid Tom",
	48: "Hi-Mid Tom",
	49: "Crash Cymbal 1",
	50: "High Tom",
	51: "Ride Cymbal 1",
	52: "Chinese Cymbal",
	53: "Ride Bell",
	54: "Tambourine",
	55: "Splash Cymbal",
	56: "Cowbell",
	57: "Crash Cymbal 2",
	58: "Vibraslap",
	59: "Ride Cymbal 2",
	60: "Hi Bongo",
	61: "Low Bongo",
	62: "Mute Hi Conga",
	63: "Open Hi Conga",
	64: "Low Conga",
	65: "High Timbale",
	66: "Low Timbale",
	67: "High Agogo",
	68: "Low Agogo",
	69: "Cabasa",
	70: "Maracas",
	71: "Short Whistle",
	72: "Long Whistle",
	73: "Short Guiro",
	74: "Long Guiro",
	75: "Claves",
	76: "Hi Wood Block",
	77: "Low Wood Block",
	78: "Mute Cuica",
	79: "Open Cuica",
	80: "Mute Triangle",
	81: "Open Triangle",
}

// maxMIDINote is the last note number MIDI can address.
const maxMIDINote = 127

// DrumName returns the General MIDI percussion name for a note, or
// "Unnamed" for notes outside the drum map.
func DrumName(note int) string {
	if name, ok := gmDrumMap[note]; ok {
		return name
	}

	return "Unnamed"
}

// DefaultNameFormat is the rename template used when none is given.
const DefaultNameFormat = "{name}_{note}_{drum}{ext}"

// RenameSpec configures MIDI note renaming. NameFormat is a template
// over {name} (original base name), {note} (three-digit note number),
// {drum} (sanitized GM drum name) and {ext} (original extension with
// dot).
type RenameSpec struct {
	StartNote  int
	NameFormat string
}

// Rename is one planned file placement.
type Rename struct {
	From string
	To   string
	Note int
}

// drumSanitizer strips everything a filename should not carry from drum
// names; spaces become underscores separately.
var drumSanitizer = regexp.MustCompile(`[^\w\s-]`)

// PlanRenames assigns consecutive MIDI notes to the audio files in dir,
// sorted by name, and renders each target name under outDir. Nothing is
// touched on disk; feed the plan to ApplyRenames once it looks right.
// Planning fails when the sequence would run past note 127.
func PlanRenames(dir, outDir string, spec RenameSpec) ([]Rename, error) {
	if spec.StartNote < 0 || spec.StartNote > maxMIDINote {
		return nil, fmt.Errorf("%w: start note %d", ErrInvalidNote, spec.StartNote)
	}

	format := spec.NameFormat
	if format == "" {
		format = DefaultNameFormat
	}

	files, err := Files(dir)
	if err != nil {
		return nil, err
	}

	if spec.StartNote+len(files)-1 > maxMIDINote {
		return nil, fmt.Errorf("%w: %d files starting at note %d",
			ErrNotEnoughNotes, len(files), spec.StartNote)
	}

	plan := make([]Rename, 0, len(files))

	for i, file := range files {
		note := spec.StartNote + i
		ext := filepath.Ext(file)
		base := strings.TrimSuffix(filepath.Base(file), ext)

		drum := drumSanitizer.ReplaceAllString(DrumName(note), "")
		drum = strings.ReplaceAll(drum, " ", "_")

		name := strings.NewReplacer(
			"{name}", base,
			"{note}", fmt.Sprintf("%03d", note),
			"{drum}", drum,
			"{ext}", ext,
		).Replace(format)

		// Templates that leave out {ext} still have to produce a
		// loadable file.
		if !strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
			name += ext
		}

		plan = append(plan, Rename{From: file, To: filepath.Join(outDir, name), Note: note})
	}

	return plan, nil
}

// ApplyRenames executes a plan: renames in place when source and target
// share a directory, copies otherwise so the originals survive. Existing
// targets are skipped unless overwrite is set. It returns the number of
// files placed; individual failures are joined into one error.
func ApplyRenames(plan []Rename, overwrite bool) (int, error) {
	applied := 0

	var errs []error

	for _, r := range plan {
		if !overwrite {
			if _, err := os.Stat(r.To); err == nil {
				logrus.WithField("file", r.To).Warn("target exists, skipping")
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(r.To), 0o755); err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", filepath.Dir(r.To), err))
			continue
		}

		var err error
		if filepath.Dir(r.From) == filepath.Dir(r.To) {
			err = os.Rename(r.From, r.To)
		} else {
			err = copyFile(r.From, r.To)
		}

		if err != nil {
			errs = append(errs, err)
			continue
		}

		applied++
	}

	return applied, errors.Join(errs...)
}

func copyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return fmt.Errorf("opening %s: %w", from, err)
	}
	defer src.Close()

	dst, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("creating %s: %w", to, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()

		return fmt.Errorf("copying to %s: %w", to, err)
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", to, err)
	}

	return nil
}
