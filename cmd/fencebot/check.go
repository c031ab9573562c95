package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var failOnAdvice bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a message for malformed code blocks",
	Long: `Reads a chat message from the given file (or stdin) and prints remediation
instructions when a malformed code block is found. Prints nothing when the
message is fine.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return err
		}

		advisor := loadAdvisor()
		instructions, ok := advisor.GetInstructions(string(data))
		if !ok {
			return nil
		}
		fmt.Println(instructions)
		if failOnAdvice {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&failOnAdvice, "fail-on-advice", false, "exit with status 1 when instructions are produced")
}
