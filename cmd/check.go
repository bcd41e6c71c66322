package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kakomon/internal/bank"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every row of a question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveBankPath(cmd)
		if path == "" {
			return fmt.Errorf("no bank given: use --bank or KAKOMON_BANK")
		}
		b, err := bank.LoadFile(path)
		if err != nil {
			return err
		}

		errs := b.Check()
		for _, e := range errs {
			fmt.Println(e)
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d of %d rows malformed", len(errs), b.Len())
		}
		fmt.Printf("%d rows OK (%d sittings, %d categories)\n", b.Len(), len(b.Sittings()), len(b.Categories()))
		return nil
	},
}
