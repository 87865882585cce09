package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
)

// ledgerFile is the input of the compute command.
type ledgerFile struct {
	Participants []string `json:"participants"`
	Expenses     []struct {
		ID       string   `json:"id"`
		Payer    string   `json:"payer"`
		Amount   float64  `json:"amount"`
		Involved []string `json:"involved"`
	} `json:"expenses"`
}

type computeOutput struct {
	Balances     []balanceLine        `json:"balances"`
	Transactions []models.Transaction `json:"transactions"`
}

type balanceLine struct {
	Participant string  `json:"participant"`
	Amount      float64 `json:"amount"`
}

func newComputeCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute balances and settlement for a ledger file",
		Long: `Reads a JSON ledger of the form
  {"participants": ["A", "B"], "expenses": [{"payer": "A", "amount": 30, "involved": ["A", "B"]}]}
and prints each participant's balance and the payments that settle them.
Use --file - to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openLedger(cmd, file)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := compute(in)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			return printCompute(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the ledger JSON file (- for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func openLedger(cmd *cobra.Command, file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	return f, nil
}

func compute(r io.Reader) (*computeOutput, error) {
	var ledger ledgerFile
	if err := json.NewDecoder(r).Decode(&ledger); err != nil {
		return nil, fmt.Errorf("failed to parse ledger: %w", err)
	}

	expenses := make([]models.Expense, len(ledger.Expenses))
	for i, e := range ledger.Expenses {
		id := e.ID
		if id == "" {
			id = fmt.Sprintf("#%d", i+1)
		}
		expenses[i] = models.Expense{
			ID:       id,
			Payer:    models.ParticipantID(e.Payer),
			Amount:   e.Amount,
			Involved: models.ParticipantIDs(e.Involved),
		}
	}

	balances, err := calculator.ComputeBalances(models.ParticipantIDs(ledger.Participants), expenses)
	if err != nil {
		return nil, err
	}

	transactions, err := calculator.ComputeSettlement(balances)
	if err != nil {
		return nil, err
	}

	out := &computeOutput{
		Balances:     make([]balanceLine, len(balances)),
		Transactions: transactions,
	}
	if out.Transactions == nil {
		out.Transactions = []models.Transaction{}
	}
	for i, b := range balances {
		out.Balances[i] = balanceLine{Participant: string(b.Participant), Amount: b.Amount}
	}
	return out, nil
}

func printCompute(w io.Writer, out *computeOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "PARTICIPANT\tBALANCE")
	for _, b := range out.Balances {
		fmt.Fprintf(tw, "%s\t%s\n", b.Participant, money(b.Amount))
	}
	fmt.Fprintln(tw)

	if len(out.Transactions) == 0 {
		fmt.Fprintln(tw, "All settled up.")
		return tw.Flush()
	}

	fmt.Fprintln(tw, "FROM\tTO\tAMOUNT")
	for _, t := range out.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.From, t.To, money(t.Amount))
	}
	return tw.Flush()
}
