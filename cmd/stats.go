package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/format"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each plan was recommended",
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

		svc := diagnosis.NewService(st.KVRepo(), st.HistoryRepo())
		counts, total, err := svc.RuleCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		inquiries, err := st.InquiryRepo().CountInquiries(cmd.Context())
		if err != nil {
			return fmt.Errorf("count inquiries: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-26s  %6s  %6s\n", "Plan", "Runs", "Share")
		for _, rule := range diagnosis.DefaultRules() {
			n := counts[rule.Name]
			share := 0.0
			if total > 0 {
				share = float64(n) / float64(total)
			}
			fmt.Fprintf(out, "%-26s  %6s  %6s\n", rule.Name, format.Number(int64(n)), format.Percent(share))
			delete(counts, rule.Name)
		}

		// Runs recorded under rules that no longer exist.
		var unknown []string
		for name := range counts {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		for _, name := range unknown {
			fmt.Fprintf(out, "%-26s  %6s\n", name, format.Number(int64(counts[name])))
		}

		fmt.Fprintf(out, "\n%s runs, %s inquiries\n", format.Number(int64(total)), format.Number(int64(inquiries)))
		return nil
	},
}
