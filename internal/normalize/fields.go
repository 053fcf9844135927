package normalize

import (
	"encoding/json"
	"strconv"
)

// PriceField decodes a JSON price that may arrive either as a number or
// as raw text such as "1,000". Text goes through Price, so the wire
// tolerates the same input the form does.
type PriceField float64

func (f *PriceField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, _ := Price(s)
		*f = PriceField(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < 0 {
		v = 0
	}
	*f = PriceField(v)
	return nil
}

func (f PriceField) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// QuantityField is the integer counterpart of PriceField.
type QuantityField int

func (f *QuantityField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, _ := Quantity(s)
		*f = QuantityField(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < 0 {
		v = 0
	}
	*f = QuantityField(v)
	return nil
}

func (f QuantityField) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}
