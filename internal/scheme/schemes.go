package scheme

// Built-in gradients, selectable by name from config and the CLI.
var (
	Fire = Gradient{
		{mustHex("#1a0000"), 0.0},
		{mustHex("#8b0000"), 0.35},
		{mustHex("#ff4500"), 0.65},
		{mustHex("#ffd700"), 0.9},
		{mustHex("#ffffff"), 1.0},
	}

	Ocean = Gradient{
		{mustHex("#001a33"), 0.0},
		{mustHex("#0077be"), 0.4},
		{mustHex("#00a8cc"), 0.7},
		{mustHex("#e0f0ff"), 1.0},
	}

	Mono = Gradient{
		{mustHex("#000000"), 0.0},
		{mustHex("#ffffff"), 1.0},
	}

	Rainbow = Gradient{
		{mustHex("#ff0000"), 0.0},
		{mustHex("#ff8800"), 0.2},
		{mustHex("#ffff00"), 0.4},
		{mustHex("#00ff00"), 0.6},
		{mustHex("#0088ff"), 0.8},
		{mustHex("#ff00ff"), 1.0},
	}

	schemes = map[string]Gradient{
		"fire":    Fire,
		"ocean":   Ocean,
		"mono":    Mono,
		"rainbow": Rainbow,
	}
)

// ByName returns a built-in gradient, falling back to Mono for unknown
// names.
func ByName(name string) Gradient {
	if g, ok := schemes[name]; ok {
		return g
	}
	return Mono
}

// Names lists the built-in scheme names.
func Names() []string {
	return []string{"fire", "mono", "ocean", "rainbow"}
}
