package businesses

import (
	"encoding/csv"
	"errors"
	"io"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/exceptions"
)

// decodeBusinessesCSV reads name,hours rows. The first row is a header and
// is skipped whatever it says.
func decodeBusinessesCSV(r io.Reader, source string) ([]models.Business, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Business{}, nil
		}
		return nil, exceptions.ErrCSVReadRecords(err, source)
	}

	var result []models.Business
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, exceptions.ErrCSVReadRecords(err, source)
		}
		result = append(result, models.Business{
			Name:  record[0],
			Hours: record[1],
		})
	}
	return result, nil
}
