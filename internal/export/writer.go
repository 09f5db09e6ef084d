package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

// Formats supported by Write
const (
	FormatParquet = "parquet"
	FormatJSONL   = "jsonl"
	FormatYAML    = "yaml"
)

// catalogueDoc is the YAML export envelope
type catalogueDoc struct {
	Exported string        `yaml:"exported"`
	Count    int           `yaml:"count"`
	Books    []models.Book `yaml:"books"`
}

// Write serializes the catalogue to path in the named format
func Write(books []models.Book, path, format string) error {
	switch format {
	case FormatParquet:
		return writeParquet(books, path)
	case FormatJSONL:
		return writeJSONL(books, path)
	case FormatYAML:
		return writeYAML(books, path)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: parquet, jsonl, yaml)", format)
	}
}

func writeParquet(books []models.Book, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.Book](file)
	if _, err := writer.Write(books); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

func writeJSONL(books []models.Book, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSONL file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, book := range books {
		line, err := json.Marshal(book)
		if err != nil {
			return fmt.Errorf("failed to marshal book %q: %w", book.Name, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("failed to write JSONL line: %w", err)
		}
	}
	return w.Flush()
}

func writeYAML(books []models.Book, path string) error {
	doc := catalogueDoc{
		Exported: time.Now().Format("2006-01-02_15-04-05"),
		Count:    len(books),
		Books:    books,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}
	return nil
}
