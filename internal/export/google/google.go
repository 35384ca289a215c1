// Package google appends transactions to a Google Sheets spreadsheet using
// service-account credentials. The export is optional; callers skip it when
// the configuration is absent.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// New creates a Sheets client. credentialsJSON wins over credentialsFile;
// with neither set, Application Default Credentials apply.
func New(ctx context.Context, spreadsheetID, sheetName, credentialsFile, credentialsJSON string) (*Client, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if sheetName = strings.TrimSpace(sheetName); sheetName == "" {
		sheetName = "Transações"
	}

	var opts []goption.ClientOption
	switch {
	case strings.TrimSpace(credentialsJSON) != "":
		opts = append(opts, goption.WithCredentialsJSON([]byte(credentialsJSON)))
	case strings.TrimSpace(credentialsFile) != "":
		raw, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		opts = append(opts, goption.WithCredentialsJSON(raw))
	}
	opts = append(opts, goption.WithScopes(gsheet.SpreadsheetsScope))

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Append writes one row per transaction at the bottom of the sheet.
func (c *Client) Append(ctx context.Context, txs ...core.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	values := make([][]any, 0, len(txs))
	for _, tx := range txs {
		values = append(values, []any{
			tx.ID,
			tx.Date,
			tx.Time,
			tx.Title,
			string(tx.Type),
			core.ResolveCategory(tx.Category).Name,
			tx.Amount.Format(),
			string(tx.PaymentMethod),
			tx.PersonName,
			tx.PaymentDate,
		})
	}

	_, err := c.svc.Spreadsheets.Values.Append(
		c.spreadsheetID,
		fmt.Sprintf("%s!A:J", c.sheetName),
		&gsheet.ValueRange{Values: values},
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append rows: %w", err)
	}
	return nil
}
