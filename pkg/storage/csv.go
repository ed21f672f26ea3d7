// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

var utf8Bom = []byte{0xef, 0xbb, 0xbf}

// CsvToJson converts raw CSV content into a JSON array of row objects. Column
// order from the header row is preserved in each object, and numeric-looking
// cells are emitted as JSON numbers rather than strings.
func CsvToJson(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8Bom)

	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed parsing csv content: %w", err)
	}

	if len(rows) < 2 {
		return "[]", nil
	}

	columns := rows[0]
	records := make([]rowRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, rowRecord{
			columns: columns,
			values:  row,
		})
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed encoding records: %w", err)
	}

	return string(encoded), nil
}

// rowRecord marshals a single CSV row as a JSON object whose keys appear in
// the original column order. A map would lose that order.
type rowRecord struct {
	columns []string
	values  []string
}

func (r rowRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, column := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := cellValue(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func cellValue(raw string) ([]byte, error) {
	if raw == "" {
		return []byte("null"), nil
	}

	if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return strconv.AppendInt(nil, parsed, 10), nil
	}

	if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
		// ParseFloat accepts NaN and Inf, neither of which is valid JSON.
		if !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			return strconv.AppendFloat(nil, parsed, 'g', -1, 64), nil
		}
	}

	return json.Marshal(raw)
}
