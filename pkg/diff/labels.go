package diff

import (
	"strings"
	"unicode"
)

// curated labels for the well known setup paths; anything else falls back to
// a label derived from the leaf key
var knownLabels = map[string]string{
	"chassis.rideHeightF": "Ride Height (Front)",
	"chassis.rideHeightR": "Ride Height (Rear)",
	"chassis.camberF":     "Camber (Front)",
	"chassis.camberR":     "Camber (Rear)",
	"chassis.toeF":        "Toe (Front)",
	"chassis.toeR":        "Toe (Rear)",
	"chassis.caster":      "Caster",
	"chassis.droopF":      "Droop (Front)",
	"chassis.droopR":      "Droop (Rear)",
	"chassis.antiSquat":   "Anti-Squat",

	"suspension.springsF":       "Springs (Front)",
	"suspension.springsR":       "Springs (Rear)",
	"suspension.shockOilF":      "Shock Oil (Front)",
	"suspension.shockOilR":      "Shock Oil (Rear)",
	"suspension.pistonsF":       "Pistons (Front)",
	"suspension.pistonsR":       "Pistons (Rear)",
	"suspension.shockPositionF": "Shock Position (Front)",
	"suspension.shockPositionR": "Shock Position (Rear)",
	"suspension.swayBarF":       "Sway Bar (Front)",
	"suspension.swayBarR":       "Sway Bar (Rear)",

	"drivetrain.pinion":     "Pinion",
	"drivetrain.spur":       "Spur",
	"drivetrain.fdr":        "Final Drive Ratio",
	"drivetrain.diffOilF":   "Diff Oil (Front)",
	"drivetrain.diffOilC":   "Diff Oil (Center)",
	"drivetrain.diffOilR":   "Diff Oil (Rear)",
	"drivetrain.slipperSet": "Slipper Setting",

	"tires.tireF":     "Tire (Front)",
	"tires.tireR":     "Tire (Rear)",
	"tires.compoundF": "Compound (Front)",
	"tires.compoundR": "Compound (Rear)",
	"tires.insertF":   "Insert (Front)",
	"tires.insertR":   "Insert (Rear)",
	"tires.wheelF":    "Wheel (Front)",
	"tires.wheelR":    "Wheel (Rear)",
	"tires.additive":  "Tire Additive",

	"electronics.motor":       "Motor",
	"electronics.motorTiming": "Motor Timing",
	"electronics.esc":         "ESC",
	"electronics.escProfile":  "ESC Profile",
	"electronics.battery":     "Battery",
	"electronics.servo":       "Servo",

	"general.body":          "Body",
	"general.wing":          "Wing",
	"general.weight":        "Weight",
	"general.weightBalance": "Weight Balance",
	"general.notes":         "Notes",
}

// LabelFor returns the display label for a dot path. Unknown paths derive a
// label from the leaf key: camelCase and snake_case are split into words and
// a trailing F/R marker becomes "(Front)"/"(Rear)".
func LabelFor(path string) string {
	if label, ok := knownLabels[path]; ok {
		return label
	}
	leaf := path
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		leaf = path[idx+1:]
	}
	return deriveLabel(leaf)
}

func deriveLabel(key string) string {
	suffix := ""
	if len(key) > 1 {
		switch key[len(key)-1] {
		case 'F':
			suffix = " (Front)"
			key = key[:len(key)-1]
		case 'R':
			suffix = " (Rear)"
			key = key[:len(key)-1]
		}
	}
	words := splitWords(key)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ") + suffix
}

func splitWords(key string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range key {
		switch {
		case r == '_' || r == '-':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return words
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
