// Package gsheets persists reservation records to a Google Sheets worksheet
// and reconciles scraped batches against it.
package gsheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Typed errors for missing store containers. Both are fatal configuration
// errors: the sheet must be pre-provisioned before a run.
var (
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
	ErrWorksheetNotFound   = errors.New("worksheet not found")
)

// ClientConfig holds the settings needed to open the reservation worksheet.
type ClientConfig struct {
	CredentialsFile  string
	SpreadsheetTitle string
	WorksheetName    string
}

// Worksheet is a handle on one worksheet of the reservation spreadsheet.
type Worksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetID       int64
	name          string
}

// OpenWorksheet resolves the spreadsheet by title through the Drive API and
// opens the named worksheet. Missing spreadsheet or worksheet is fatal; the
// adapter never creates the store on the fly.
func OpenWorksheet(ctx context.Context, cfg ClientConfig) (*Worksheet, error) {
	driveSvc, err := drive.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive client: %w", err)
	}

	query := fmt.Sprintf(
		"name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		cfg.SpreadsheetTitle,
	)
	list, err := driveSvc.Files.List().Q(query).PageSize(1).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search for spreadsheet: %w", err)
	}
	if len(list.Files) == 0 {
		return nil, fmt.Errorf("%w: %q (create and share it with the service account first)",
			ErrSpreadsheetNotFound, cfg.SpreadsheetTitle)
	}
	spreadsheetID := list.Files[0].Id

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets client: %w", err)
	}

	ss, err := svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}
	for _, sheet := range ss.Sheets {
		if sheet.Properties.Title == cfg.WorksheetName {
			return &Worksheet{
				svc:           svc,
				spreadsheetID: spreadsheetID,
				sheetID:       sheet.Properties.SheetId,
				name:          cfg.WorksheetName,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q in spreadsheet %q",
		ErrWorksheetNotFound, cfg.WorksheetName, cfg.SpreadsheetTitle)
}

// URL returns the browser link to the spreadsheet.
func (w *Worksheet) URL() string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=%d", w.spreadsheetID, w.sheetID)
}

// ReadAllRows returns every row of the worksheet as strings.
func (w *Worksheet) ReadAllRows(ctx context.Context) ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, w.name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet values: %w", err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

// AppendRows appends rows after the last data row in a single batched write.
func (w *Worksheet) AppendRows(ctx context.Context, rows [][]string) error {
	vr := &sheets.ValueRange{Values: toValues(rows)}
	_, err := w.svc.Spreadsheets.Values.Append(w.spreadsheetID, w.name, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append rows: %w", err)
	}
	return nil
}

// InsertRowAt inserts a row at the given zero-based index, shifting
// subsequent rows down without disturbing them.
func (w *Worksheet) InsertRowAt(ctx context.Context, index int, row []string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    w.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index),
					EndIndex:   int64(index + 1),
				},
				InheritFromBefore: false,
			},
		}},
	}
	if _, err := w.svc.Spreadsheets.BatchUpdate(w.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert row: %w", err)
	}
	return w.UpdateRowAt(ctx, index, row)
}

// UpdateRowAt overwrites the row at the given zero-based index.
func (w *Worksheet) UpdateRowAt(ctx context.Context, index int, row []string) error {
	vr := &sheets.ValueRange{Values: toValues([][]string{row})}
	_, err := w.svc.Spreadsheets.Values.Update(
		w.spreadsheetID,
		fmt.Sprintf("%s!A%d", w.name, index+1),
		vr,
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update row: %w", err)
	}
	return nil
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return values
}
