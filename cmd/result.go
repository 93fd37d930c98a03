package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shindan/internal/diagnosis"
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Show or clear the saved diagnosis result",
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
		out := cmd.OutOrStdout()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			if err := svc.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear result: %w", err)
			}
			fmt.Fprintln(out, "保存された診断結果を削除しました")
			return nil
		}

		res, err := svc.Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load result: %w", err)
		}
		if res == nil {
			fmt.Fprintln(out, "保存された診断結果はありません")
			return nil
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			res.DetailURL = cfg.DetailURL(res.DetailURL)
			return printJSON(out, res)
		}
		printResult(out, *res, cfg.DetailURL)
		return nil
	},
}

func init() {
	resultCmd.Flags().Bool("clear", false, "Remove the saved result")
	resultCmd.Flags().Bool("json", false, "Print the result as JSON")
}
