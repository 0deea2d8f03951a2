package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/paisatrail/paisa-trail/internal/cli"
	"github.com/paisatrail/paisa-trail/internal/engine"
	"github.com/paisatrail/paisa-trail/internal/model"
	"github.com/paisatrail/paisa-trail/internal/parser"
)

// importRecord is one line of a capture file: the shape the bridge app
// exports when a device's notification inbox is dumped.
type importRecord struct {
	Body       string `json:"body"`
	Sender     string `json:"sender"`
	ReceivedAt string `json:"receivedAt"`
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import messages from JSON-lines capture files",
		Long: `Import bank notification messages from JSON-lines files, one
{"body", "sender", "receivedAt"} record per line.

Examples:
  # Import a single capture file
  paisa import ~/Downloads/sms-dump.jsonl

  # Import everything the bridge app exported
  paisa import ~/Downloads/sms-*.jsonl

  # Preview without writing to the database
  paisa import --dry-run sms-dump.jsonl`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "parse without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}
	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	var msgs []model.Message
	for _, filePath := range allFiles {
		fileMsgs, err := readCaptureFile(filePath)
		if err != nil {
			slog.Error("Failed to read capture file", "file", filePath, "error", err)
			continue
		}
		msgs = append(msgs, fileMsgs...)
	}
	if len(msgs) == 0 {
		return fmt.Errorf("no messages found in %d file(s)", len(allFiles))
	}

	slog.Info("Importing messages",
		"file_count", len(allFiles),
		"message_count", len(msgs),
		"dry_run", dryRun)

	bar := progressbar.NewOptions(len(msgs),
		progressbar.OptionSetDescription("Parsing messages"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	if dryRun {
		parsed, rejected := 0, 0
		for _, msg := range msgs {
			if parser.Parse(msg) != nil {
				parsed++
			} else {
				rejected++
			}
			_ = bar.Add(1)
		}
		fmt.Println(cli.RenderIngestSummary(len(msgs), parsed, rejected, 0, 0))
		fmt.Println(cli.SubtleStyle.Render("Dry run: nothing was saved."))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store)

	// Ingest in slices so the bar tracks real progress on large dumps.
	const chunkSize = 200
	var total engine.IngestStats
	for start := 0; start < len(msgs); start += chunkSize {
		end := start + chunkSize
		if end > len(msgs) {
			end = len(msgs)
		}

		stats, err := eng.Ingest(ctx, msgs[start:end])
		if err != nil {
			return fmt.Errorf("import failed at message %d: %w", start, err)
		}

		total.Received += stats.Received
		total.Parsed += stats.Parsed
		total.Rejected += stats.Rejected
		total.Duplicates += stats.Duplicates
		total.Stored += stats.Stored
		_ = bar.Add(end - start)
	}

	fmt.Println(cli.RenderIngestSummary(total.Received, total.Parsed, total.Rejected, total.Duplicates, total.Stored))
	return nil
}

func readCaptureFile(path string) ([]model.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var msgs []model.Message
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var rec importRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Warn("Skipping malformed record", "file", path, "line", line, "error", err)
			continue
		}

		receivedAt := time.Now().UTC()
		if rec.ReceivedAt != "" {
			if parsed, err := time.Parse(time.RFC3339, rec.ReceivedAt); err == nil {
				receivedAt = parsed
			} else {
				slog.Warn("Record has invalid receivedAt, using now", "file", path, "line", line)
			}
		}

		msgs = append(msgs, model.Message{
			Body:       rec.Body,
			Sender:     rec.Sender,
			ReceivedAt: receivedAt,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return msgs, nil
}
