package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/shindan/internal/app"
	"github.com/abhisek/shindan/internal/diagnosis"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// Without a database the diagnosis still works but nothing is saved.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{
		Link:         cfg.DetailURL,
		HistoryLimit: cfg.HistoryLimit,
	}

	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Database not available:", err)
		fmt.Fprintln(os.Stderr, "Results will not be saved.")
		opts.Service = diagnosis.NewService(nil, nil)
	} else {
		defer st.Close()
		opts.Service = diagnosis.NewService(st.KVRepo(), st.HistoryRepo())
		opts.Inquiries = st.InquiryRepo()
		opts.Persistent = true
	}

	return app.Run(opts)
}
