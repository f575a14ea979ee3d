package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Uint64 decodes JSON numbers and decimal strings. The REST API sends uint64 values as strings.
type Uint64 uint64

func (u *Uint64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseAmount(s)
		if err != nil {
			return err
		}
		*u = Uint64(v)
		return nil
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parse integer %s: %w", data, err)
	}
	*u = Uint64(v)
	return nil
}

// MosaicID decodes JSON numbers and hex-or-decimal strings.
type MosaicID uint64

func (m *MosaicID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseMosaicID(s)
		if err != nil {
			return err
		}
		*m = MosaicID(v)
		return nil
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parse mosaic id %s: %w", data, err)
	}
	*m = MosaicID(v)
	return nil
}

// Mosaic is the REST representation of a mosaic amount.
type Mosaic struct {
	ID       MosaicID `json:"id"`
	MosaicID MosaicID `json:"mosaicId"`
	Amount   Uint64   `json:"amount"`
}

// Resolve returns the id, preferring "id" over "mosaicId".
func (m Mosaic) Resolve() (uint64, uint64) {
	if m.ID != 0 {
		return uint64(m.ID), uint64(m.Amount)
	}
	return uint64(m.MosaicID), uint64(m.Amount)
}
