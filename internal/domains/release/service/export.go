package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"labelhub-backend/internal/domains/release/model"
)

const (
	exportSheet    = "Releases"
	MaxExportRows  = 5000
	exportDateTime = "2006-01-02 15:04:05"
)

var exportHeaders = []string{
	"ID", "Title", "Version", "UPC", "Artist", "Label", "Genre", "Release Date",
	"Status", "Approved At", "Created At", "Cover URL", "Audio URL", "Tags",
}

func (s *releaseService) Export(ctx context.Context, req model.ListReleasesRequest) (*excelize.File, error) {
	if req.Status != "" && !model.Status(req.Status).IsValid() {
		return nil, model.ErrInvalidStatus
	}

	releases, err := s.repo.ListAll(ctx, req, MaxExportRows)
	if err != nil {
		return nil, fmt.Errorf("list releases for export: %w", err)
	}

	f, err := buildReleasesFile(releases)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}
	return f, nil
}

func buildReleasesFile(releases []model.Release) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	// Row 1: header
	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheet, "A1", last, style)
	}

	// Data rows từ row 2
	for i, r := range releases {
		row := []interface{}{
			r.ID.String(),
			r.Title,
			deref(r.Version),
			deref(r.UPC),
			"",
			"",
			deref(r.Genre),
			"",
			string(r.Status),
			"",
			r.CreatedAt.Format(exportDateTime),
			deref(r.CoverArtURL),
			deref(r.AudioFileURL),
			strings.Join(r.Metadata.Tags, ", "),
		}
		if r.Artist != nil {
			row[4] = r.Artist.Name
		}
		if r.Label != nil {
			row[5] = r.Label.Name
		}
		if r.ReleaseDate != nil {
			row[7] = r.ReleaseDate.Format(model.DateLayout)
		}
		if r.ApprovedAt != nil {
			row[9] = r.ApprovedAt.Format(exportDateTime)
		}

		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, start, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
