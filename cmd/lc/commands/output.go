package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	output := viper.GetString("output")
	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, output)
	}
}

// renderRecord writes a single record as a Field/Value table, JSON or YAML.
func renderRecord(w io.Writer, record lendingclub.Record) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return encodeJSON(w, record)
	case constants.FormatYAML:
		return encodeYAML(w, record)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	for _, key := range record.Keys() {
		value, _ := record.Get(key)

		err := table.Append([]string{key, formatValue(value)})
		if err != nil {
			return fmt.Errorf("failed to append row to table: %w", err)
		}
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderRecords writes a list of records. Table columns are fields, or the
// fields of the first record when fields is empty.
func renderRecords(w io.Writer, records []lendingclub.Record, fields []string, emptyMessage string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return encodeJSON(w, records)
	case constants.FormatYAML:
		return encodeYAML(w, records)
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, emptyMessage)

		return nil
	}

	columns := fields
	if len(columns) == 0 {
		columns = records[0].Keys()
	}

	header := make([]interface{}, len(columns))
	for i, column := range columns {
		header[i] = column
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, record := range records {
		row := make([]string, len(columns))

		for i, column := range columns {
			value, _ := record.Get(column)
			row[i] = formatValue(value)
		}

		err := table.Append(row)
		if err != nil {
			return fmt.Errorf("failed to append row to table: %w", err)
		}
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderListedLoans writes a listing with its as-of date.
func renderListedLoans(w io.Writer, listed *lendingclub.ListedLoans, fields []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return encodeJSON(w, listed)
	case constants.FormatYAML:
		return encodeYAML(w, listed)
	}

	_, _ = fmt.Fprintf(w, "Loans listed as of %s:\n", formatValue(listed.AsOfDate))

	return renderRecords(w, listed.Loans, fields, "No loans listed.")
}

func encodeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func encodeYAML(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// formatValue renders a record value for a table cell.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if v == "" {
			return constants.NotAvailable
		}

		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	}
}
