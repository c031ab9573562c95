package codeblock

import (
	"regexp"
	"sort"
	"strings"

	"fencebot/internal/utils"
)

// Backtick is the canonical fence character.
const Backtick = "`"

// ticks are the characters users plausibly open a fence with: the backtick,
// the tilde, and the quote-like lookalikes keyboards and mobile autocorrect
// produce instead of a backtick.
var ticks = []string{Backtick, "~", "'", "\"", "´", "‘", "’", "“", "”"}

// fenceRegexps holds one pattern per tick character. RE2 has no
// backreferences, so the opening and closing runs are spelled out per tick.
var fenceRegexps = buildFenceRegexps()

func buildFenceRegexps() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(ticks))
	for _, t := range ticks {
		fence := regexp.QuoteMeta(strings.Repeat(t, 3))
		res = append(res, regexp.MustCompile(`(?s)`+fence+`(?:([^\W_]+)\n)?(.+?)`+fence))
	}
	return res
}

// CodeBlock is one (possibly malformed) fenced block located in a message.
type CodeBlock struct {
	Content  string // text between the fences; includes a malformed tag line when present
	Language string // tag following the opening fence; empty when absent or malformed
	Tick     string // fence character the block was opened with
}

// BadLanguageTag describes the problems found with a Python language tag line.
type BadLanguageTag struct {
	Language        string
	LeadingSpaces   bool
	TerminalNewline bool
}

type fenceMatch struct {
	start, end int
	block      CodeBlock
}

// FindCodeBlocks locates Markdown code blocks in a message.
//
// If the message contains at least one block with the canonical fence and a
// language tag, it returns (nil, true): the user evidently knows the syntax
// and nothing needs fixing. Otherwise it returns every located block in
// message order; an empty slice means no fences were found at all.
func FindCodeBlocks(message string) ([]CodeBlock, bool) {
	utils.Logger.Trace().Str("module", "codeblock").Msg("Finding all code blocks in a message")

	var matches []fenceMatch
	for i, re := range fenceRegexps {
		for _, idx := range re.FindAllStringSubmatchIndex(message, -1) {
			language := ""
			if idx[2] != -1 {
				language = message[idx[2]:idx[3]]
			}
			matches = append(matches, fenceMatch{
				start: idx[0],
				end:   idx[1],
				block: CodeBlock{
					Content:  message[idx[4]:idx[5]],
					Language: language,
					Tick:     ticks[i],
				},
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	var blocks []CodeBlock
	prevEnd := -1
	for _, m := range matches {
		// Fences of different tick types can overlap; keep the leftmost.
		if m.start < prevEnd {
			continue
		}
		prevEnd = m.end

		if m.block.Tick == Backtick && m.block.Language != "" {
			utils.Logger.Trace().Str("module", "codeblock").Msg("Message has a valid code block with a language; nothing to fix")
			return nil, true
		}
		blocks = append(blocks, m.block)
	}
	return blocks, false
}
