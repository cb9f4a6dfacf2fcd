package model

import "fmt"

// Sequence bounds
const (
	NameCount     = 72
	FirstPosition = 0
	LastPosition  = NameCount - 1
)

// scriptForms holds the 72 three-letter sequences in canonical order
var scriptForms = [NameCount]string{
	"והו", "ילי", "סיט", "עלמ", "מהש", "ללה", "אכא", "כהת", "הזי", "אלד",
	"לאו", "ההע", "יזל", "מבה", "הרי", "הקמ", "לאו", "כלי", "לוו", "פהל",
	"נלכ", "ייי", "מלה", "חהו", "נתה", "האא", "ירת", "שאה", "ריי", "אומ",
	"לכב", "ושר", "יחו", "להח", "כוק", "מנד", "אני", "חעמ", "רהע", "ייז",
	"ההה", "מיכ", "וול", "ילה", "סאל", "ערי", "עשל", "מיה", "והו", "דני",
	"החש", "עממ", "ננא", "נית", "מבה", "פוי", "נממ", "ייל", "הרח", "מצר",
	"ומב", "יהה", "ענו", "מחי", "דמב", "מנק", "איע", "חבו", "ראה", "יבמ",
	"היי", "מומ",
}

// ScriptForm returns the letter sequence shown at the given position, or
// an empty string when the position is out of range
func ScriptForm(position int) string {
	if !ValidPosition(position) {
		return ""
	}
	return scriptForms[position]
}

// ValidPosition reports whether position addresses one of the 72 names
func ValidPosition(position int) bool {
	return position >= FirstPosition && position <= LastPosition
}

// NumberAt converts a 0-based position to the 1-based name number
func NumberAt(position int) int {
	return position + 1
}

// StepPosition moves one step in the given direction, wrapping around both ends
func StepPosition(position int, dir Direction) int {
	switch dir {
	case DirectionLeft:
		if position <= FirstPosition {
			return LastPosition
		}
		return position - 1
	default:
		if position >= LastPosition {
			return FirstPosition
		}
		return position + 1
	}
}

// ClampPosition bounds position to the valid range without wrapping
func ClampPosition(position int) int {
	if position < FirstPosition {
		return FirstPosition
	}
	if position > LastPosition {
		return LastPosition
	}
	return position
}

// CounterLabel returns the "n / 72" label for a position
func CounterLabel(position int) string {
	return fmt.Sprintf("%d / %d", NumberAt(ClampPosition(position)), NameCount)
}

// VisualOrder reverses the runes of a right-to-left string so renderers that
// only lay out left-to-right draw it in reading order
func VisualOrder(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
