package lendingclub

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Record is an immutable projection of a JSON object returned by the API.
//
// Its fields are whatever keys the response contained, in the order they
// were received. Values keep their JSON shape: numbers are json.Number so
// that no precision is lost, nested objects are Record, arrays are
// []interface{}, and null is nil.
type Record struct {
	keys   []string
	values map[string]interface{}
}

// NewRecord builds a Record from a map. Keys are ordered as given by keys;
// keys missing from fields are skipped and fields not named in keys are
// appended in no particular order.
func NewRecord(fields map[string]interface{}, keys ...string) Record {
	record := Record{
		keys:   make([]string, 0, len(fields)),
		values: make(map[string]interface{}, len(fields)),
	}

	for _, key := range keys {
		value, ok := fields[key]
		if !ok {
			continue
		}

		if _, seen := record.values[key]; seen {
			continue
		}

		record.keys = append(record.keys, key)
		record.values[key] = normalizeValue(value)
	}

	for key, value := range fields {
		if _, seen := record.values[key]; seen {
			continue
		}

		record.keys = append(record.keys, key)
		record.values[key] = normalizeValue(value)
	}

	return record
}

// ParseRecord decodes a JSON object into a Record.
func ParseRecord(data []byte) (Record, error) {
	var record Record

	err := record.UnmarshalJSON(data)
	if err != nil {
		return Record{}, err
	}

	return record, nil
}

// ParseRecords decodes a JSON array of objects into a slice of Records.
func ParseRecords(data []byte) ([]Record, error) {
	value, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}

	list, ok := value.([]interface{})
	if !ok {
		return nil, ErrNotJSONArray
	}

	return toRecords(list)
}

// Keys returns the field names in response order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Has reports whether the field was present in the response, even if null.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]

	return ok
}

// IsNull reports whether the field is present with a JSON null value.
func (r Record) IsNull(key string) bool {
	value, ok := r.values[key]

	return ok && value == nil
}

// Get returns the raw value of a field.
func (r Record) Get(key string) (interface{}, bool) {
	value, ok := r.values[key]

	return value, ok
}

// String returns a string field.
func (r Record) String(key string) (string, error) {
	value, err := r.lookup(key)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case string:
		return v, nil
	default:
		return "", fieldTypeError(key, "string", value)
	}
}

// Int64 returns an integer field.
func (r Record) Int64(key string) (int64, error) {
	value, err := r.lookup(key)
	if err != nil {
		return 0, err
	}

	number, ok := value.(json.Number)
	if !ok {
		return 0, fieldTypeError(key, "integer", value)
	}

	n, err := number.Int64()
	if err != nil {
		return 0, fieldTypeError(key, "integer", value)
	}

	return n, nil
}

// Float64 returns a numeric field as a float. Use Decimal for money.
func (r Record) Float64(key string) (float64, error) {
	value, err := r.lookup(key)
	if err != nil {
		return 0, err
	}

	number, ok := value.(json.Number)
	if !ok {
		return 0, fieldTypeError(key, "number", value)
	}

	f, err := number.Float64()
	if err != nil {
		return 0, fieldTypeError(key, "number", value)
	}

	return f, nil
}

// Decimal returns a numeric field exactly as it was written in the response.
// String fields holding a decimal number are accepted too.
func (r Record) Decimal(key string) (decimal.Decimal, error) {
	value, err := r.lookup(key)
	if err != nil {
		return decimal.Zero, err
	}

	var text string

	switch v := value.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = v
	default:
		return decimal.Zero, fieldTypeError(key, "decimal", value)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fieldTypeError(key, "decimal", value)
	}

	return d, nil
}

// Bool returns a boolean field.
func (r Record) Bool(key string) (bool, error) {
	value, err := r.lookup(key)
	if err != nil {
		return false, err
	}

	b, ok := value.(bool)
	if !ok {
		return false, fieldTypeError(key, "boolean", value)
	}

	return b, nil
}

// Record returns a nested object field.
func (r Record) Record(key string) (Record, error) {
	value, err := r.lookup(key)
	if err != nil {
		return Record{}, err
	}

	nested, ok := value.(Record)
	if !ok {
		return Record{}, fieldTypeError(key, "object", value)
	}

	return nested, nil
}

// Records returns a field holding an array of objects.
func (r Record) Records(key string) ([]Record, error) {
	value, err := r.lookup(key)
	if err != nil {
		return nil, err
	}

	list, ok := value.([]interface{})
	if !ok {
		return nil, fieldTypeError(key, "array", value)
	}

	records, err := toRecords(list)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}

	return records, nil
}

// Map returns a deep copy of the record as plain maps and slices.
func (r Record) Map() map[string]interface{} {
	result := make(map[string]interface{}, len(r.keys))
	for _, key := range r.keys {
		result[key] = plainValue(r.values[key])
	}

	return result
}

// Equal reports whether both records hold the same fields with equal values.
// Field order is not significant.
func (r Record) Equal(other Record) bool {
	if len(r.keys) != len(other.keys) {
		return false
	}

	for _, key := range r.keys {
		otherValue, ok := other.values[key]
		if !ok {
			return false
		}

		if !reflect.DeepEqual(plainValue(r.values[key]), plainValue(otherValue)) {
			return false
		}
	}

	return true
}

// Decode copies the record into out, which must be a pointer to a struct or
// map. Struct fields are matched by their json tag. Numeric fields may be
// decoded into decimal.Decimal.
func (r Record) Decode(out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       decimalDecodeHook,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("creating record decoder: %w", err)
	}

	err = decoder.Decode(r.Map())
	if err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}

	return nil
}

// MarshalJSON writes the record with its fields in response order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encoding field name %q: %w", key, err)
		}

		buf.Write(keyJSON)
		buf.WriteByte(':')

		valueJSON, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", key, err)
		}

		buf.Write(valueJSON)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping field order and exact numbers.
func (r *Record) UnmarshalJSON(data []byte) error {
	value, err := decodeJSON(data)
	if err != nil {
		return err
	}

	record, ok := value.(Record)
	if !ok {
		return ErrNotJSONObject
	}

	*r = record

	return nil
}

// MarshalYAML renders the record as a YAML mapping in response order.
func (r Record) MarshalYAML() (interface{}, error) {
	return yamlNode(r), nil
}

func (r Record) lookup(key string) (interface{}, error) {
	value, ok := r.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, key)
	}

	return value, nil
}

func fieldTypeError(key, want string, value interface{}) error {
	return fmt.Errorf("%w: %q is %s, want %s", ErrFieldType, key, describeValue(value), want)
}

func describeValue(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case Record:
		return "object"
	case []interface{}:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func toRecords(list []interface{}) ([]Record, error) {
	records := make([]Record, 0, len(list))

	for i, element := range list {
		record, ok := element.(Record)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s, want object", ErrFieldType, i, describeValue(element))
		}

		records = append(records, record)
	}

	return records, nil
}

func decodeJSON(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing JSON: %w", errTrailingData)
	}

	return value, nil
}

var errTrailingData = errors.New("unexpected data after top-level value")

func decodeValue(decoder *json.Decoder) (interface{}, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		record := Record{values: make(map[string]interface{})}

		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}

			key, _ := keyToken.(string)

			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}

			if _, seen := record.values[key]; !seen {
				record.keys = append(record.keys, key)
			}

			record.values[key] = value
		}

		_, err = decoder.Token()
		if err != nil {
			return nil, err
		}

		return record, nil
	case '[':
		list := make([]interface{}, 0)

		for decoder.More() {
			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}

			list = append(list, value)
		}

		_, err = decoder.Token()
		if err != nil {
			return nil, err
		}

		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// normalizeValue converts values handed to NewRecord into the shapes a
// decoded response would have.
func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return NewRecord(v)
	case []interface{}:
		list := make([]interface{}, len(v))
		for i, element := range v {
			list[i] = normalizeValue(element)
		}

		return list
	case []Record:
		list := make([]interface{}, len(v))
		for i, element := range v {
			list[i] = element
		}

		return list
	case int:
		return json.Number(fmt.Sprint(v))
	case int64:
		return json.Number(fmt.Sprint(v))
	case float64:
		return json.Number(fmt.Sprint(v))
	case decimal.Decimal:
		return json.Number(v.String())
	default:
		return value
	}
}

func plainValue(value interface{}) interface{} {
	switch v := value.(type) {
	case Record:
		return v.Map()
	case []interface{}:
		list := make([]interface{}, len(v))
		for i, element := range v {
			list[i] = plainValue(element)
		}

		return list
	default:
		return value
	}
}

func yamlNode(value interface{}) *yaml.Node {
	switch v := value.(type) {
	case Record:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.keys {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				yamlNode(v.values[key]),
			)
		}

		return node
	case []interface{}:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, element := range v {
			node.Content = append(node.Content, yamlNode(element))
		}

		return node
	case json.Number:
		tag := "!!float"
		if _, err := v.Int64(); err == nil {
			tag = "!!int"
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(v)}
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprint(v)}
	}
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

func decimalDecodeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != decimalType {
		return data, nil
	}

	switch v := data.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return data, nil
	}
}
