package repository

import (
	"encoding/json"
	"fmt"
)

// Yetenek listeleri sütunda JSON dizisi olarak saklanır; sıralama korunur.
func encodeSkills(skills []string) (string, error) {
	if len(skills) == 0 {
		return "[]", nil
	}

	data, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("yetenek listesi kodlanamadı: %w", err)
	}

	return string(data), nil
}

func decodeSkills(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, fmt.Errorf("yetenek listesi çözümlenemedi: %w", err)
	}

	if len(skills) == 0 {
		return nil, nil
	}

	return skills, nil
}
