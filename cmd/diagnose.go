package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/quiz"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Run the diagnosis non-interactively from flags",
	Example: `  shindan diagnose --employment-status before_resignation \
    --resignation-reason voluntary --medical-diagnosis yes \
    --immediate-job-search no --benefit-priority maximize_amount`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		answers, err := answersFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		svc := diagnosis.NewService(nil, nil)
		if save, _ := cmd.Flags().GetBool("save"); save {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			svc = diagnosis.NewService(st.KVRepo(), st.HistoryRepo())
		}

		res, err := svc.Complete(cmd.Context(), answers)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			res.DetailURL = cfg.DetailURL(res.DetailURL)
			return printJSON(cmd.OutOrStdout(), res)
		}
		printResult(cmd.OutOrStdout(), res, cfg.DetailURL)
		return nil
	},
}

// flagName turns a question ID into its flag name.
func flagName(questionID string) string {
	return strings.ReplaceAll(questionID, "_", "-")
}

// answersFromFlags feeds each question's flag value through the quiz engine
// in order, so the same validation applies as in the interactive flow.
func answersFromFlags(flags *pflag.FlagSet) (quiz.AnswerSet, error) {
	engine := diagnosis.NewEngine()
	for !engine.IsComplete() {
		q, _ := engine.CurrentQuestion()
		name := flagName(q.ID)
		value, _ := flags.GetString(name)
		if err := engine.Advance(value); err != nil {
			return nil, fmt.Errorf("--%s: %w (choices: %s)", name, err, optionValues(q))
		}
	}
	return engine.Answers(), nil
}

func optionValues(q quiz.Question) string {
	values := make([]string, len(q.Options))
	for i, o := range q.Options {
		values[i] = o.Value
	}
	return strings.Join(values, ", ")
}

func init() {
	for _, q := range diagnosis.Questions() {
		diagnoseCmd.Flags().String(flagName(q.ID), "", fmt.Sprintf("%s (%s)", q.Title, optionValues(q)))
	}
	diagnoseCmd.Flags().Bool("save", false, "Save the result and add it to the history")
	diagnoseCmd.Flags().Bool("json", false, "Print the result as JSON")
}
