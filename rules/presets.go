package rules

// Conway is the standard Game of Life rule: (alive && neighbors == 2) || neighbors == 3
var Conway = MustParseRule("b3/s23")

// Presets are the rules selectable from the number keys of the original shell, in order.
var Presets = []Rule{
	Conway,
	MustParseRule("b1/s012345678"),
	MustParseRule("b5678/s45678"),
}

// Preset returns the i-th preset, or false when i is out of range.
func Preset(i int) (Rule, bool) {
	if i < 0 || i >= len(Presets) {
		return Rule{}, false
	}
	return Presets[i], true
}
