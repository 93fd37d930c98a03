package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/shindan/internal/api"
	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/faq"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the diagnosis as a JSON API",
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

		srv := api.NewServer(api.Options{
			Service:        diagnosis.NewService(st.KVRepo(), st.HistoryRepo()),
			Inquiries:      st.InquiryRepo(),
			Link:           cfg.DetailURL,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			SessionTTL:     cfg.Server.SessionTTL,
			FAQ:            faq.DefaultItems(),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "listening on %s\n", cfg.Server.Addr)
		return srv.Serve(ctx, cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
