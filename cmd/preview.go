package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kakomon/internal/bank"
	"github.com/abhisek/kakomon/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the quiz list a selection would produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveBankPath(cmd)
		if path == "" {
			return fmt.Errorf("no bank given: use --bank or KAKOMON_BANK")
		}
		b, err := bank.LoadFile(path)
		if err != nil {
			return err
		}

		sittings, _ := cmd.Flags().GetStringSlice("sittings")
		categories, _ := cmd.Flags().GetStringSlice("categories")
		seed, _ := cmd.Flags().GetInt64("seed")
		showAnswers, _ := cmd.Flags().GetBool("answers")

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		quizzes, err := quiz.Filter(b, quiz.Selection{
			Sittings:   sittings,
			Categories: categories,
		}, rng)
		if err != nil {
			return err
		}

		for i, qz := range quizzes {
			fmt.Printf("%d. %s\n", i+1, qz.Question)
			for j, opt := range qz.Options {
				marker := " "
				if showAnswers && opt == qz.CorrectOption {
					marker = "*"
				}
				fmt.Printf("   %s %d) %s\n", marker, j+1, opt)
			}
		}
		fmt.Printf("\n%d question(s)\n", len(quizzes))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringSlice("sittings", []string{quiz.SelectAll}, "Sittings to include (repeatable; ALL for every sitting)")
	previewCmd.Flags().StringSlice("categories", []string{quiz.SelectAll}, "Categories to include (repeatable; ALL for every category)")
	previewCmd.Flags().Int64("seed", 0, "Shuffle seed (0 = time-based)")
	previewCmd.Flags().Bool("answers", false, "Mark the correct option")
}
