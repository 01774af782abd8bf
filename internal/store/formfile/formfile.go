package formfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/coldpitch/internal/model"
)

// Form documents on disk. JSON for *.json, YAML for everything else.

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func Load(path string) (model.FormInput, error) {
	var f model.FormInput
	b, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read file: %w", err)
	}
	if isJSON(path) {
		if err := json.Unmarshal(b, &f); err != nil {
			return f, fmt.Errorf("json unmarshal: %w", err)
		}
		return f, nil
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f, nil
}

func Save(path string, f model.FormInput) error {
	b, err := Encode(path, f)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Encode renders f in the format Save would pick for path.
func Encode(path string, f model.FormInput) ([]byte, error) {
	if isJSON(path) {
		b, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return append(b, '\n'), nil
	}
	b, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return b, nil
}
