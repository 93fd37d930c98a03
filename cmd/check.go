package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/shindan/internal/form"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate an email address and/or phone number",
	RunE: func(cmd *cobra.Command, args []string) error {
		var fields []form.Field
		if cmd.Flags().Changed("email") {
			email, _ := cmd.Flags().GetString("email")
			fields = append(fields, form.Field{Name: "email", Label: "メールアドレス", Value: email, Required: true, Check: form.CheckEmail})
		}
		if cmd.Flags().Changed("phone") {
			phone, _ := cmd.Flags().GetString("phone")
			fields = append(fields, form.Field{Name: "phone", Label: "電話番号", Value: phone, Required: true, Check: form.CheckPhone})
		}
		if len(fields) == 0 {
			return errors.New("nothing to check: pass --email and/or --phone")
		}

		errs := form.Validate(fields)
		out := cmd.OutOrStdout()
		for _, f := range fields {
			if err := errs.Get(f.Name); err != nil {
				fmt.Fprintf(out, "%s: NG (%v)\n", f.Name, err)
			} else {
				fmt.Fprintf(out, "%s: OK\n", f.Name)
			}
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().String("email", "", "Email address to validate")
	checkCmd.Flags().String("phone", "", "Phone number to validate")
}
