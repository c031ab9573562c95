package codeblock

import (
	"fmt"

	"fencebot/internal/utils"
)

const examplePython = "%s\nprint('Hello, world!')" // Make sure to escape any Markdown symbols here.

// The escaped fences show what to type, the live fences show how the channel
// renders it.
const exampleCodeBlocks = "\\`\\`\\`%s\n\\`\\`\\`\n\n" +
	"**This will result in the following:**\n" +
	"```%s```"

// Example returns an example of a correct code block using language for
// syntax highlighting. The user's casing is preserved. Total over any input,
// including tags containing fence characters.
func (a *Advisor) Example(language string) string {
	var content string
	switch {
	case a.isPythonAlias(language):
		utils.Logger.Trace().Str("module", "codeblock").Msgf("Code block has a Python language specifier `%s`", language)
		content = fmt.Sprintf(examplePython, language)
	case language != "":
		utils.Logger.Trace().Str("module", "codeblock").Msgf("Code block has a foreign language specifier `%s`", language)
		// It's not feasible to determine what would be a valid example for
		// other languages.
		content = language + "\n..."
	default:
		utils.Logger.Trace().Str("module", "codeblock").Msg("Code block has no language specifier")
		content = "\nHello, world!"
	}
	return fmt.Sprintf(exampleCodeBlocks, content, content)
}
