package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// BatchInput lists the (k, prime) cases of one generation batch.
type BatchInput struct {
	Runs []Params `mapstructure:"runs"`
}

// BatchFromJson reads a batch description of the form
// {"runs": [{"k": 4, "prime": 17}, ...]} from a JSON file.
func BatchFromJson(file string) (BatchInput, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return BatchInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(content, &inputJson); err != nil {
		return BatchInput{}, err
	}

	var input BatchInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return BatchInput{}, err
	}

	return input, nil
}
