package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/format"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past diagnoses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		limit := cfg.HistoryLimit
		if cmd.Flags().Changed("limit") {
			limit, _ = cmd.Flags().GetInt("limit")
		}

		svc := diagnosis.NewService(st.KVRepo(), st.HistoryRepo())
		runs, err := svc.History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "まだ診断履歴はありません")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-24s  %s\n", "Date", "Plan", "Amount")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range runs {
			fmt.Fprintf(out, "%-16s  %-24s  %s\n",
				format.Date(r.CompletedAt.Local()), r.Rule, format.Amount(r.MaxAmount))
		}
		fmt.Fprintf(out, "\n%d runs\n", len(runs))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to show (default from config)")
}
