// Package sheets appends disbursement bills to a Google Sheets worksheet.
//
// The worksheet is created on first use and given a bold header row; later
// bills are appended below the existing rows.
package sheets

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"settlement/internal/export"
	"settlement/internal/logger"
	"settlement/pkg/models"
)

// Service writes bills to one spreadsheet.
type Service struct {
	sheetsService *sheets.Service
	spreadsheetID string
	log           zerolog.Logger
}

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// NewSheetsService connects to the spreadsheet at sheetURL with service
// account credentials from GOOGLE_APPLICATION_CREDENTIALS (a file) or
// GOOGLE_CREDENTIALS (inline JSON).
func NewSheetsService(ctx context.Context, sheetURL string) (*Service, error) {
	const op = "NewSheetsService"

	log := logger.WithComponent("sheets")

	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	creds, err := loadCredentials()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	jwt, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse credentials: %w", op, err)
	}

	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create sheets service: %w", op, err)
	}

	log.Debug().Str("spreadsheet_id", spreadsheetID).Msg("Sheets service ready")

	return &Service{
		sheetsService: sheetsService,
		spreadsheetID: spreadsheetID,
		log:           log,
	}, nil
}

func loadCredentials() ([]byte, error) {
	if path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		creds, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		return creds, nil
	}
	if inline := os.Getenv("GOOGLE_CREDENTIALS"); inline != "" {
		return []byte(inline), nil
	}
	return nil, fmt.Errorf("neither GOOGLE_APPLICATION_CREDENTIALS nor GOOGLE_CREDENTIALS is set")
}

func extractSpreadsheetID(url string) (string, error) {
	matches := spreadsheetIDPattern.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", fmt.Errorf("no spreadsheet id in %q", url)
	}
	return matches[1], nil
}

// sheetHeaders are the bill columns followed by the processing timestamp.
func sheetHeaders() []interface{} {
	headers := make([]interface{}, 0, len(export.Headers)+1)
	for _, h := range export.Headers {
		headers = append(headers, h)
	}
	return append(headers, "Processed At")
}

// lastColumn is the letter of the final header column.
func lastColumn() string {
	return string(rune('A' + len(sheetHeaders()) - 1))
}

// billValues converts groups into appendable rows, ending with the grand total.
func billValues(groups []models.InvoiceGroup, processedAt time.Time) [][]interface{} {
	stamp := processedAt.Format("2006-01-02 15:04:05")

	var values [][]interface{}
	for _, row := range export.Rows(groups) {
		values = append(values, append(row.Values(), stamp))
	}
	return append(values, append(export.TotalValues(groups), stamp))
}

// WriteBill appends the bill rows and its grand total to sheetName.
func (s *Service) WriteBill(ctx context.Context, groups []models.InvoiceGroup, sheetName string) error {
	const op = "WriteBill"

	if err := s.prepareSheet(ctx, sheetName); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	values := billValues(groups, time.Now())
	_, err := s.sheetsService.Spreadsheets.Values.Append(
		s.spreadsheetID,
		fmt.Sprintf("%s!A:%s", sheetName, lastColumn()),
		&sheets.ValueRange{Values: values},
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%s: failed to append bill rows: %w", op, err)
	}

	s.log.Info().
		Str("sheet", sheetName).
		Int("groups", len(groups)).
		Int("rows_written", len(values)).
		Msg("Bill appended to Google Sheet")

	return nil
}

// prepareSheet makes sure sheetName exists and starts with the header row.
func (s *Service) prepareSheet(ctx context.Context, sheetName string) error {
	sheetID, err := s.sheetID(ctx, sheetName)
	if err != nil {
		return err
	}

	headerRange := fmt.Sprintf("%s!A1:%s1", sheetName, lastColumn())
	resp, err := s.sheetsService.Spreadsheets.Values.Get(s.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}

	_, err = s.sheetsService.Spreadsheets.Values.Update(
		s.spreadsheetID,
		headerRange,
		&sheets.ValueRange{Values: [][]interface{}{sheetHeaders()}},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	if err := s.styleHeaderRow(ctx, sheetID); err != nil {
		s.log.Warn().Err(err).Str("sheet", sheetName).Msg("Header row left unstyled")
	}
	return nil
}

// sheetID returns the id of sheetName, adding the sheet when it is missing.
func (s *Service) sheetID(ctx context.Context, sheetName string) (int64, error) {
	spreadsheet, err := s.sheetsService.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to get spreadsheet: %w", err)
	}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			return sheet.Properties.SheetId, nil
		}
	}

	s.log.Info().Str("sheet", sheetName).Msg("Adding bill sheet")

	resp, err := s.batchUpdate(ctx, &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{Title: sheetName},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add sheet %q: %w", sheetName, err)
	}
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

func (s *Service) styleHeaderRow(ctx context.Context, sheetID int64) error {
	columns := int64(len(sheetHeaders()))

	_, err := s.batchUpdate(ctx,
		&sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    0,
					EndRowIndex:      1,
					StartColumnIndex: 0,
					EndColumnIndex:   columns,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat:      &sheets.TextFormat{Bold: true},
						BackgroundColor: &sheets.Color{Red: 0.9, Green: 0.9, Blue: 0.9},
					},
				},
				Fields: "userEnteredFormat(textFormat,backgroundColor)",
			},
		},
		&sheets.Request{
			AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
				Dimensions: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: 0,
					EndIndex:   columns,
				},
			},
		},
	)
	return err
}

func (s *Service) batchUpdate(ctx context.Context, requests ...*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}
	return s.sheetsService.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do()
}
