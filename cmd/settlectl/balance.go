package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
)

func newBalanceCmd() *cobra.Command {
	var (
		baseURL string
		groupID string
		timeout time.Duration
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the settlement of a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client := protoconnect.NewGroupServiceClient(&http.Client{Timeout: timeout}, baseURL)
			resp, err := client.GetBalance(ctx, connect.NewRequest(&pb.GetBalanceRequest{GroupId: groupID}))
			if err != nil {
				return fmt.Errorf("GetBalance failed: %w", err)
			}

			if asJSON {
				return printProtoJSON(cmd.OutOrStdout(), resp.Msg)
			}
			return printBalance(cmd.OutOrStdout(), resp.Msg)
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the settleup server")
	cmd.Flags().StringVarP(&groupID, "group", "g", "", "Group ID")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}

func printBalance(w io.Writer, msg *pb.GetBalanceResponse) error {
	source := "computed"
	if msg.Cached {
		source = "cached"
	}
	fmt.Fprintf(w, "Group %s (%s), %s at %s\n\n", msg.GroupId, msg.Currency, source, formatMillis(msg.ComputedAt))

	if len(msg.Debts) == 0 {
		fmt.Fprintln(w, "All settled up.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tAMOUNT")
	for _, d := range msg.Debts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.From, d.To, money(d.Amount))
	}
	return tw.Flush()
}

func printProtoJSON(w io.Writer, msg *pb.GetBalanceResponse) error {
	data, err := protojson.MarshalOptions{Multiline: true, EmitUnpopulated: true}.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal balance: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
