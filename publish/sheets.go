package publish

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"motivation-pipeline/types"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// AppendRow records the run in the tracking spreadsheet. Skipped silently
// when no spreadsheet is configured.
func (p *Publisher) AppendRow(ctx context.Context, run *types.Run, md *types.VideoMetadata, folderName string) error {
	if p.cfg.Publish.SpreadsheetID == "" {
		return nil
	}

	ts, err := p.tokenSource(ctx, sheets.SpreadsheetsScope)
	if err != nil {
		return err
	}
	svc, err := sheets.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return fmt.Errorf("sheets service: %w", err)
	}

	row := []interface{}{
		time.Now().UTC().Format(time.RFC3339),
		run.Timestamp,
		run.Topic,
		md.Title,
		folderName,
		strings.Join(md.Tags, ","),
	}

	_, err = svc.Spreadsheets.Values.
		Append(p.cfg.Publish.SpreadsheetID, p.cfg.Publish.SheetRange, &sheets.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	log.Printf("[publish] Logged run %s to spreadsheet", run.Timestamp)
	return nil
}
