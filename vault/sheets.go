package vault

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Sheets publishes tabular reports to a Google spreadsheet.
type Sheets struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewSheets builds a publisher authenticated with a service account credentials file.
func NewSheets(ctx context.Context, credentialsPath, spreadsheetID string, logger *zap.Logger) (*Sheets, error) {
	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(credentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}
	return &Sheets{service: service, spreadsheetID: spreadsheetID, logger: logger}, nil
}

// AppendRows appends rows after the last filled row of sheetRange.
func (s *Sheets) AppendRows(ctx context.Context, sheetRange string, rows [][]string) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}
	payload := &sheetsapi.ValueRange{Values: Values(rows)}
	call := s.service.Spreadsheets.Values.Append(s.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)
	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append rows into range %s: %w", sheetRange, err)
	}
	logger(s.logger).Info("rows appended to sheet", zap.String("range", sheetRange), zap.Int("rows", len(rows)))
	return nil
}

// Values converts text rows to the cell values of the sheets API.
func Values(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}
	return values
}
