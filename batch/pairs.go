package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pair is a matched left/right mono recording and the stereo file their
// join should produce.
type Pair struct {
	Left   string
	Right  string
	Output string
}

// FindChannelPairs scans dir for the "<name> L.wav" / "<name> R.wav"
// naming convention and returns one Pair per match, sorted by name, with
// the output "<name>_stereo.wav" placed alongside the inputs. Matching
// is exact including case; recorders that split channels write these
// suffixes verbatim.
func FindChannelPairs(dir string) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	names := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names[entry.Name()] = true
		}
	}

	var pairs []Pair

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		base, ok := strings.CutSuffix(entry.Name(), " L.wav")
		if !ok {
			continue
		}

		right := base + " R.wav"
		if !names[right] {
			continue
		}

		pairs = append(pairs, Pair{
			Left:   filepath.Join(dir, entry.Name()),
			Right:  filepath.Join(dir, right),
			Output: filepath.Join(dir, base+"_stereo.wav"),
		})
	}

	return pairs, nil
}
