package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ChunkSlice splits items into consecutive groups of at most size elements.
// The concatenation of the returned groups preserves the original order.
func ChunkSlice[T any](items []T, size int) [][]T {
	if size <= 0 {
		return nil
	}

	var chunks [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}

	return chunks
}

func Encode[T any](w http.ResponseWriter, r *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func Decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode json: %w", err)
	}
	return v, nil
}
