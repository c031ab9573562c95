package detect

import (
	"regexp"
	"strings"
)

// DefaultREPLThreshold is the number of prompt lines required before text is
// treated as an interactive session transcript.
const DefaultREPLThreshold = 3

// Patterns for lines that plausibly begin a Python statement. An AST check is
// only available inside CPython, so classification is a scored line heuristic.
var (
	pyKeywordRe = regexp.MustCompile(`^\s*(def |class |import |from \S+ import |if |elif |else:|for |while |try:|except[ :]|finally:|with |return\b|yield\b|raise |pass\b|async def |lambda |assert |del |global |nonlocal )`)
	pyCallRe    = regexp.MustCompile(`^\s*(print|len|range|input|open|type|isinstance|super)\(`)
	pyAssignRe  = regexp.MustCompile(`^\s*[A-Za-z_][\w.]*(\[[^\]]*\])?\s*[-+*/%]?=\s*[^=\s]`)
	pyDecorRe   = regexp.MustCompile(`^\s*@[A-Za-z_][\w.]*`)
	pyCommentRe = regexp.MustCompile(`^\s*#`)

	replPromptRe    = regexp.MustCompile(`^(>>>|\.\.\.)( |$)`)
	ipythonPromptRe = regexp.MustCompile(`^(In|Out) ?\[\d+\]: ?`)

	fenceLineRe = regexp.MustCompile("^\\s*(`{3,}|~{3,})")
)

// Heuristic is the default code likeness classifier. The zero value is not
// usable; construct it with NewHeuristic.
type Heuristic struct {
	replThreshold int
}

func NewHeuristic(replThreshold int) *Heuristic {
	if replThreshold < 1 {
		replThreshold = DefaultREPLThreshold
	}
	return &Heuristic{replThreshold: replThreshold}
}

// LooksLikePython reports whether content reads like Python source: at least
// half of its non-blank lines start a plausible Python statement.
func (h *Heuristic) LooksLikePython(content string) bool {
	total, hits := 0, 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		// A fence attempt is markup, not code; weigh it against the vote so
		// stray or unclosed fences don't read as Python.
		if fenceLineRe.MatchString(line) {
			hits--
			continue
		}
		if pyKeywordRe.MatchString(line) ||
			pyCallRe.MatchString(line) ||
			pyAssignRe.MatchString(line) ||
			pyDecorRe.MatchString(line) ||
			pyCommentRe.MatchString(line) {
			hits++
		}
	}
	if total == 0 || hits < 1 {
		return false
	}
	return hits*2 >= total
}

// LooksLikeREPL reports whether content reads like a Python or IPython
// interactive session transcript.
func (h *Heuristic) LooksLikeREPL(content string) bool {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if replPromptRe.MatchString(line) || ipythonPromptRe.MatchString(line) {
			count++
		}
	}
	return count >= h.replThreshold
}
