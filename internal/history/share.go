package history

import (
	"strings"

	"github.com/abhisek/strengthmap/internal/assessment"
)

const (
	shareHeading  = "わたしの強みマップの結果"
	shareSection  = "【私の強み】"
	shareHashtags = "#わたしの強みマップ #自己分析"
)

// ShareText builds the plain-text summary posted when a result is shared.
func ShareText(r assessment.Result) string {
	lines := make([]string, len(r.Strengths))
	for i, s := range r.Strengths {
		lines[i] = "・" + s.Title
	}
	return shareHeading + "\n\n" + shareSection + "\n" + strings.Join(lines, "\n") + "\n\n" + shareHashtags
}
