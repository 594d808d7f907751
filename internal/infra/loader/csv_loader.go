// Package loader reads address books from CSV files.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"addressbook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	columnStreet       = "street"
	columnNumber       = "number"
	columnNeighborhood = "neighborhood"
)

// CSVLoader reads an address book from a CSV file with a
// street,number,neighborhood header. Columns may appear in any order;
// only street is mandatory.
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a new CSV loader for the file at path
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load reads the file for ownerID, keeping file order as the address book order
func (l *CSVLoader) Load(ownerID uuid.UUID) ([]*entity.Address, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	addresses, err := Read(file, ownerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", l.path)
	}

	return addresses, nil
}

// Read parses CSV rows from r. Addresses get fresh IDs and consecutive positions.
func Read(r io.Reader, ownerID uuid.UUID) ([]*entity.Address, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	columns, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	addresses := []*entity.Address{}
	lineNum := 1

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		address := &entity.Address{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			Street:       field(record, columns, columnStreet),
			Number:       field(record, columns, columnNumber),
			Neighborhood: field(record, columns, columnNeighborhood),
			Position:     len(addresses),
		}
		if address.Street == "" {
			return nil, errors.Errorf("empty street at line %d", lineNum)
		}

		addresses = append(addresses, address)
	}

	return addresses, nil
}

func parseHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[name]; dup {
			return nil, errors.Errorf("duplicate column %q in header", name)
		}
		columns[name] = i
	}

	if _, ok := columns[columnStreet]; !ok {
		return nil, errors.Errorf("header must contain a %q column", columnStreet)
	}

	return columns, nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}
