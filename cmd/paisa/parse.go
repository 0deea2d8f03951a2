package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/paisatrail/paisa-trail/internal/cli"
	"github.com/paisatrail/paisa-trail/internal/model"
	"github.com/paisatrail/paisa-trail/internal/parser"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [message text]",
		Short: "Parse a single notification message",
		Long: `Parse a single bank notification text into a structured transaction.

The message body is taken from the arguments, or from stdin when no
arguments are given. Rejection ("no match") is an expected outcome and
exits with status 0.

Examples:
  # Parse from arguments
  paisa parse "Rs. 1250 debited at Zomato. Ref: 12345" --sender HDFCBNK

  # Parse from stdin
  pbpaste | paisa parse

  # Parse and record in the local database
  paisa parse "Rs. 450 paid to Uber" --sender VM-UBER --save`,
		RunE: runParse,
	}

	cmd.Flags().String("sender", "", "sender short-code (e.g. HDFCBNK)")
	cmd.Flags().String("received-at", "", "receipt timestamp, RFC 3339 (default: now)")
	cmd.Flags().Bool("json", false, "print machine-readable JSON")
	cmd.Flags().Bool("save", false, "record the transaction in the local database")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	sender, _ := cmd.Flags().GetString("sender")
	receivedAtFlag, _ := cmd.Flags().GetString("received-at")
	asJSON, _ := cmd.Flags().GetBool("json")
	save, _ := cmd.Flags().GetBool("save")

	body := strings.Join(args, " ")
	if strings.TrimSpace(body) == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		body = string(raw)
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("no message text given")
	}

	receivedAt := time.Now().UTC()
	if receivedAtFlag != "" {
		parsed, err := time.Parse(time.RFC3339, receivedAtFlag)
		if err != nil {
			return fmt.Errorf("invalid --received-at (want RFC 3339): %w", err)
		}
		receivedAt = parsed
	}

	txn := parser.Parse(model.Message{
		Body:       body,
		Sender:     sender,
		ReceivedAt: receivedAt,
	})

	if txn == nil {
		if asJSON {
			fmt.Println(`{"match": false}`)
		} else {
			fmt.Println(cli.RenderNoMatch())
		}
		return nil
	}

	if save {
		store, err := initStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		inserted, err := store.SaveTransactions(cmd.Context(), []model.ParsedTransaction{*txn})
		if err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}
		if inserted == 0 && !asJSON {
			fmt.Println(cli.SubtleStyle.Render("Already recorded (same fingerprint), skipped."))
		}
	}

	if asJSON {
		out, err := json.MarshalIndent(struct {
			Transaction *model.ParsedTransaction `json:"transaction"`
			Match       bool                     `json:"match"`
		}{Transaction: txn, Match: true}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode transaction: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(cli.RenderTransaction(txn))
	return nil
}
