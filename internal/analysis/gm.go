package analysis

// gmFamilies names the sixteen General MIDI program families, eight
// programs each.
var gmFamilies = [16]string{
	"Piano",
	"Chromatic Percussion",
	"Organ",
	"Guitar",
	"Bass",
	"Strings",
	"Ensemble",
	"Brass",
	"Reed",
	"Pipe",
	"Synth Lead",
	"Synth Pad",
	"Synth Effects",
	"Ethnic",
	"Percussive",
	"Sound Effects",
}

// GMFamily returns the General MIDI family name for a program number.
// Programs parsed from a file are always 7-bit; anything larger maps
// to "Unknown".
func GMFamily(program uint8) string {
	if program > 127 {
		return "Unknown"
	}
	return gmFamilies[program/8]
}
