package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example [language]",
	Short: "Print a correct code block example for a language tag",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		language := ""
		if len(args) == 1 {
			language = args[0]
		}
		advisor := loadAdvisor()
		fmt.Println(advisor.Example(language))
	},
}
