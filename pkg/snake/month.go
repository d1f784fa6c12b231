// Package snake walks the user through picking a month with promptui.
package snake

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/monthgrid"
	"tableflip.dev/cal/pkg/timeutil"
)

// PromptMonth asks for a month, offering start as the default. Anything
// timeutil.ParseMonth accepts is a valid answer, relative to start.
func PromptMonth(cmd *cobra.Command, start monthgrid.Position) (monthgrid.Position, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     "Month (e.g. March 2025, 2025-03, next, -2)",
		Default:   start.String(),
		Templates: templates,
		Validate:  validator(start),
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}

	result, err := prompt.Run()
	if err != nil {
		return start, fmt.Errorf("month prompt failed: %w", err)
	}
	return timeutil.ParseMonth(result, start)
}

func validator(start monthgrid.Position) promptui.ValidateFunc {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return nil
		}
		_, err := timeutil.ParseMonth(input, start)
		return err
	}
}
