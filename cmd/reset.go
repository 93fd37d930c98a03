package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shindan/internal/diagnosis"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved result and the diagnosis history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete data without --yes")
		}

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
		n, err := svc.Reset(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted the saved result and %d runs\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
