package json

import (
	"io"
	"quarry/packages/common/logger"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var encodingLogger = logger.NewSource("ENCODING", logger.Default)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// Prices are numbers for API clients
	decimal.MarshalJSONWithoutQuotes = true
}

// Decode given json.
func Decode[T any](input io.Reader) (T, error) {
	var result T

	if err := json.NewDecoder(input).Decode(&result); err != nil {
		encodingLogger.Error("Failed to decode JSON", err.Error(), nil)

		return result, err
	}

	return result, nil
}

func Unmarshal[T any](data []byte) (T, error) {
	var result T

	if err := json.Unmarshal(data, &result); err != nil {
		encodingLogger.Error("Failed to unmarshal JSON", err.Error(), nil)

		return result, err
	}

	return result, nil
}

func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		encodingLogger.Error("Failed to marshal JSON", err.Error(), nil)
	}
	return data, err
}

func NewEncoder(w io.Writer) *jsoniter.Encoder {
	return json.NewEncoder(w)
}

func NewDecoder(r io.Reader) *jsoniter.Decoder {
	return json.NewDecoder(r)
}
