package encode

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"
)

func MustJSONMarshal(v interface{}) []byte {
	encoded, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return encoded
}

// WriteJSONLine writes v as a single line of JSON
func WriteJSONLine(w io.Writer, v interface{}) error {
	line := append(MustJSONMarshal(v), '\n')
	_, err := w.Write(line)
	return err
}

// FloatToDecimal converts f to a decimal rounded to the given number of places
func FloatToDecimal(f float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(places)
}
