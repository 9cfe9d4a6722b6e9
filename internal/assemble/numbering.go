package assemble

import (
	"strconv"
	"strings"

	"github.com/aretw0/waymark/pkg/ports"
)

// NumberTrail resolves a node's ancestor numbering path by walking parent
// links up to the document root, collecting the ordinal of every numbered
// node on the way. The result is root-first, e.g. task 2 / step 3 -> [2 3].
func NumberTrail(n ports.Node) []int {
	var trail []int
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Numbered() {
			trail = append(trail, cur.Number())
		}
	}
	// Collected leaf-first; reverse into document order.
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}
	return trail
}

// FormatTitle renders a dotted numbering prefix in front of a title, e.g.
// ([2 3], "Configure X") -> "2.3. Configure X". An empty trail yields the
// title unchanged.
func FormatTitle(trail []int, title string) string {
	if len(trail) == 0 {
		return title
	}
	parts := make([]string, len(trail))
	for i, n := range trail {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".") + ". " + title
}

// NumberedTitle is the composition used at assembly time.
func NumberedTitle(n ports.Node) string {
	return FormatTitle(NumberTrail(n), n.Title())
}
