// Command settlectl computes settlements offline and queries a settleup server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "settlectl",
		Short:         "settleup CLI tool",
		Long:          `A command line interface for computing settlements and querying the settleup API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newComputeCmd())
	rootCmd.AddCommand(newBalanceCmd())

	return rootCmd
}

// money formats an amount with exactly two decimals.
func money(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
