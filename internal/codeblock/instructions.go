package codeblock

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"fencebot/internal/metrics"
	"fencebot/internal/utils"
)

// DefaultPythonAliases are the language tags recognized as Python attempts,
// longest-first so a tag regexp alternation prefers the longer alias.
var DefaultPythonAliases = []string{"python-repl", "python3", "pycon", "python", "py"}

// Detector reports whether free-form text looks like Python code. The advisor
// only consults it to avoid nagging about content that clearly isn't code.
type Detector interface {
	LooksLikePython(content string) bool
	LooksLikeREPL(content string) bool
}

// rule pairs an advice category with its handler. Handlers return ("", false)
// when they don't apply; the dispatcher stops at the first non-empty result.
type rule struct {
	name   string
	handle func(message string, blocks []CodeBlock) (string, bool)
}

// Advisor applies the code block decision tree to chat messages and composes
// remediation instructions. It is stateless and safe for concurrent use.
type Advisor struct {
	detector Detector
	aliases  map[string]struct{}
	tagRe    *regexp.Regexp
	rules    []rule
}

// NewAdvisor builds an advisor around the given code likeness detector. An
// empty alias list falls back to DefaultPythonAliases.
func NewAdvisor(detector Detector, aliases []string) *Advisor {
	if len(aliases) == 0 {
		aliases = DefaultPythonAliases
	}

	set := make(map[string]struct{}, len(aliases))
	quoted := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		set[strings.ToLower(alias)] = struct{}{}
		quoted = append(quoted, regexp.QuoteMeta(alias))
	}
	// Longer aliases first, otherwise "py" would shadow "python" in the
	// alternation.
	sort.Slice(quoted, func(i, j int) bool {
		if len(quoted[i]) != len(quoted[j]) {
			return len(quoted[i]) > len(quoted[j])
		}
		return quoted[i] < quoted[j]
	})

	a := &Advisor{
		detector: detector,
		aliases:  set,
		tagRe:    regexp.MustCompile(`(?i)^(\s+)?(` + strings.Join(quoted, "|") + `)(\n)?`),
	}
	a.rules = []rule{
		{name: "no_ticks", handle: a.noTicks},
		{name: "bad_ticks", handle: a.badTicks},
		{name: "bad_language", handle: a.badLanguage},
		{name: "no_language", handle: a.noLanguage},
	}
	return a
}

// GetInstructions returns code block formatting instructions for a message,
// or ("", false) if nothing's wrong. At most one message is ever produced,
// covering the first problematic block found.
func (a *Advisor) GetInstructions(message string) (string, bool) {
	utils.Logger.Trace().Str("module", "codeblock").Msg("Getting formatting instructions")
	metrics.ScansTotal.Inc()

	blocks, valid := FindCodeBlocks(message)
	if valid {
		return "", false
	}

	for _, r := range a.rules {
		if msg, ok := r.handle(message, blocks); ok {
			metrics.InstructionsTotal.WithLabelValues(r.name).Inc()
			return msg, true
		}
	}
	return "", false
}

// AnalyzeTag inspects the start of a block body for a Python language tag
// attempt. It returns nil when the body does not begin with a recognized
// Python alias; tags for other languages are not validated.
func (a *Advisor) AnalyzeTag(body string) *BadLanguageTag {
	m := a.tagRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return &BadLanguageTag{
		Language:        m[2],
		LeadingSpaces:   m[1] != "",
		TerminalNewline: m[3] != "",
	}
}

func (a *Advisor) isPythonAlias(language string) bool {
	_, ok := a.aliases[strings.ToLower(language)]
	return ok
}

// noTicks handles messages without any fence markers: if the whole message
// looks like Python code or a REPL session, explain that code blocks exist.
func (a *Advisor) noTicks(message string, blocks []CodeBlock) (string, bool) {
	if len(blocks) > 0 {
		return "", false
	}
	utils.Logger.Trace().Str("module", "codeblock").Msg("Creating instructions for a missing code block")

	if !a.detector.LooksLikeREPL(message) && !a.detector.LooksLikePython(message) {
		utils.Logger.Trace().Str("module", "codeblock").Msg("Aborting missing code block instructions: content is not Python code")
		return "", false
	}

	return "It looks like you're trying to paste code into this channel.\n\n" +
		"Discord has support for Markdown, which allows you to post code with full " +
		"syntax highlighting. Please use these whenever you paste code, as this " +
		"helps improve the legibility and makes it easier for us to help you.\n\n" +
		"**To do this, use the following method:**\n" + a.Example("python"), true
}

// badTicks handles the first block opened with a non-canonical fence
// character. Secondary tag issues on the same block are appended as a
// subordinate clause so only one top-level message is ever produced.
func (a *Advisor) badTicks(message string, blocks []CodeBlock) (string, bool) {
	var block *CodeBlock
	for i := range blocks {
		if blocks[i].Tick != Backtick {
			block = &blocks[i]
			break
		}
	}
	if block == nil {
		return "", false
	}
	utils.Logger.Trace().Str("module", "codeblock").Msg("Creating instructions for incorrect code block ticks")

	validTicks := strings.Repeat(`\`+Backtick, 3)
	instructions := "It looks like you are trying to paste code into this channel.\n\n" +
		"You seem to be using the wrong symbols to indicate where the code block should start. " +
		fmt.Sprintf("The correct symbols would be %s, not `%s`.", validTicks, strings.Repeat(block.Tick, 3))

	addition, ok := a.badLanguageBody(block.Content)
	if !ok && block.Language == "" {
		addition, ok = a.noLanguageBody(block.Content)
	}

	if ok {
		utils.Logger.Trace().Str("module", "codeblock").Msg("Language specifier issue found; appending additional instructions")
		instructions += "\n\nFurthermore, " + asSubordinateClause(addition)
	} else {
		instructions += "\n\n**Here is an example of how it should look:**\n" + a.Example(block.Language)
	}
	return instructions, true
}

// badLanguage handles a correctly fenced first block whose language tag line
// is a malformed Python tag.
func (a *Advisor) badLanguage(message string, blocks []CodeBlock) (string, bool) {
	if len(blocks) == 0 {
		return "", false
	}
	return a.badLanguageBody(blocks[0].Content)
}

func (a *Advisor) badLanguageBody(content string) (string, bool) {
	utils.Logger.Trace().Str("module", "codeblock").Msg("Creating instructions for a poorly specified language")

	info := a.AnalyzeTag(content)
	if info == nil {
		utils.Logger.Trace().Str("module", "codeblock").Msg("Aborting bad language instructions: language specified isn't Python")
		return "", false
	}

	var lines []string
	if info.LeadingSpaces {
		lines = append(lines, fmt.Sprintf(
			"Make sure there are no spaces between the back ticks and `%s`.", info.Language))
	}
	if !info.TerminalNewline {
		lines = append(lines, fmt.Sprintf(
			"Make sure you put your code on a new line following `%s`. "+
				"There must not be any spaces after `%s`.", info.Language, info.Language))
	}
	if len(lines) == 0 {
		utils.Logger.Trace().Str("module", "codeblock").Msg("Nothing wrong with the language specifier; no instructions to return")
		return "", false
	}

	// badTicks relies on the first line ending in a double newline when it
	// recomposes this as a subordinate clause.
	return fmt.Sprintf(
		"It looks like you incorrectly specified a language for your code block.\n\n%s"+
			"\n\n**Here is an example of how it should look:**\n%s",
		strings.Join(lines, " "), a.Example(info.Language)), true
}

// noLanguage handles a correctly fenced first block with no language tag and
// a Python-looking body.
func (a *Advisor) noLanguage(message string, blocks []CodeBlock) (string, bool) {
	if len(blocks) == 0 || blocks[0].Language != "" {
		return "", false
	}
	return a.noLanguageBody(blocks[0].Content)
}

func (a *Advisor) noLanguageBody(content string) (string, bool) {
	utils.Logger.Trace().Str("module", "codeblock").Msg("Creating instructions for a missing language")

	// The scanner's tag pattern cannot carry hyphenated aliases like
	// python-repl, so a well-formed tag can arrive here still embedded in the
	// content. The language is specified; there is nothing to recommend.
	if info := a.AnalyzeTag(content); info != nil && !info.LeadingSpaces && info.TerminalNewline {
		utils.Logger.Trace().Str("module", "codeblock").Msg("Aborting missing language instructions: content already carries a well-formed Python tag")
		return "", false
	}

	if !a.detector.LooksLikeREPL(content) && !a.detector.LooksLikePython(content) {
		utils.Logger.Trace().Str("module", "codeblock").Msg("Aborting missing language instructions: content is not Python code")
		return "", false
	}

	// badTicks relies on the first line ending in a double newline when it
	// recomposes this as a subordinate clause.
	return "It looks like you pasted Python code without syntax highlighting.\n\n" +
		"Please use syntax highlighting to improve the legibility of your code and make " +
		"it easier for us to help you.\n\n" +
		"**To do this, use the following method:**\n" + a.Example("python"), true
}
