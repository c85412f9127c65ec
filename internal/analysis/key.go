package analysis

import "gopkg.in/music-theory.v0/key"

// Circle of fifths, indexed by sharps/flats + 7. Minor tonics are the
// relative minors of the majors in the same column.
var (
	majorKeys = [15]string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#"}
	minorKeys = [15]string{"Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#"}
)

// keyName renders a key signature as a canonical name such as
// "G major" or "E minor". Values outside the defined -7..+7 range, or
// names the music-theory parser cannot resolve to a root, come back
// empty.
func keyName(sharpsFlats int8, minor bool) string {
	idx := int(sharpsFlats) + 7
	if idx < 0 || idx >= len(majorKeys) {
		return ""
	}

	name := majorKeys[idx] + " major"
	if minor {
		name = minorKeys[idx] + " minor"
	}
	if k := key.Of(name); k.Root == 0 {
		return ""
	}
	return name
}
