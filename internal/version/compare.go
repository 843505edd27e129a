package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// UIBreakpoints lists the versions that changed the generated site's markup. Sites built
// with a version at or above a breakpoint get a matching body class so the stylesheet can
// target them.
var UIBreakpoints = []string{"0.1.4"}

// Compare compares two dotted versions numerically.
// It returns 0 when left == right, -1 when left < right and 1 when left > right.
// A leading "v" is optional. Unparsable versions sort below every valid version and
// compare equal to each other.
func Compare(left, right string) int {
	return semver.Compare(canonical(left), canonical(right))
}

// BodyClasses returns the breakpoints that current has reached, in breakpoint order.
func BodyClasses(current string) []string {
	var classes []string
	for _, bp := range UIBreakpoints {
		if Compare(current, bp) >= 0 {
			classes = append(classes, bp)
		}
	}
	return classes
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func containsUnknown(v string) bool {
	return strings.Contains(v, "unknown")
}
