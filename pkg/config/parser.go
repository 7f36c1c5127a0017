package config

import (
	"encoding/json"
	"os"
)

// ReadExperimentFile parses an experiment configuration from a JSON file.
// The result is not validated; call Validate before running.
func ReadExperimentFile(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, err
	}

	var experiment Experiment
	if err := json.Unmarshal(data, &experiment); err != nil {
		return Experiment{}, err
	}

	return experiment, nil
}
