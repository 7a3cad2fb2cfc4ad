// Package jsontext reads and writes the JSON documents stored in TEXT columns.
// Survey sections, medication lists and similar free-form payloads are kept as
// serialized JSON in the row; a row written by an older client may hold
// malformed text, so decoding degrades to an empty value instead of failing
// the whole read.
package jsontext

import (
	"database/sql"
	"encoding/json"

	"github.com/rs/zerolog"
)

// Codec decodes and encodes JSON TEXT columns, logging rows it cannot parse.
type Codec struct {
	log zerolog.Logger
}

// NewCodec returns a Codec that reports undecodable rows through log.
func NewCodec(log zerolog.Logger) *Codec {
	return &Codec{log: log}
}

// DecodeObject parses a JSON object column. NULL, empty and malformed text
// all produce an empty map; malformed text is additionally logged with the
// column name so the bad row can be located.
func (c *Codec) DecodeObject(column string, raw sql.NullString) map[string]interface{} {
	if !raw.Valid || raw.String == "" {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		c.log.Warn().Err(err).Str("column", column).Msg("malformed JSON column, returning empty object")
		return map[string]interface{}{}
	}
	if out == nil {
		return map[string]interface{}{}
	}
	return out
}

// DecodeList parses a JSON array column. NULL, empty and malformed text all
// produce an empty slice.
func (c *Codec) DecodeList(column string, raw sql.NullString) []interface{} {
	if !raw.Valid || raw.String == "" {
		return []interface{}{}
	}
	var out []interface{}
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		c.log.Warn().Err(err).Str("column", column).Msg("malformed JSON column, returning empty list")
		return []interface{}{}
	}
	if out == nil {
		return []interface{}{}
	}
	return out
}

// EncodeObject serializes v for storage. A nil map is stored as "{}".
func (c *Codec) EncodeObject(v map[string]interface{}) (string, error) {
	if v == nil {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeList serializes v for storage. A nil slice is stored as "[]".
func (c *Codec) EncodeList(v []interface{}) (string, error) {
	if v == nil {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
