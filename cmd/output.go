package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/shindan/internal/diagnosis"
	"github.com/abhisek/shindan/internal/format"
)

// printResult writes r as readable text. link resolves the detail path.
func printResult(w io.Writer, r diagnosis.Result, link func(string) string) {
	fmt.Fprintf(w, "診断結果: %s\n", r.Title)
	fmt.Fprintf(w, "受給額の目安: %s\n", format.Amount(r.MaxAmount))
	fmt.Fprintf(w, "受給期間: %s\n\n", r.Period)
	fmt.Fprintln(w, r.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "次のステップ:")
	for i, step := range r.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
	if detail := link(r.DetailURL); detail != "" {
		fmt.Fprintf(w, "\n詳しくは: %s\n", detail)
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
