// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the bookmark list to YAML, JSON, CSV or XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/forkify/pkg/types"
)

// Format names an export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{FormatYAML, FormatJSON, FormatCSV, FormatXLSX}

const sheetName = "Bookmarks"

// Entry is one exported recipe.
type Entry struct {
	ID          string             `json:"id" yaml:"id"`
	Title       string             `json:"title" yaml:"title"`
	Publisher   string             `json:"publisher" yaml:"publisher"`
	SourceURL   string             `json:"source_url" yaml:"source_url"`
	ImageURL    string             `json:"image_url" yaml:"image_url"`
	CookingTime int                `json:"cooking_time" yaml:"cooking_time"`
	Servings    int                `json:"servings" yaml:"servings"`
	Ingredients []types.Ingredient `json:"ingredients" yaml:"ingredients"`
	Key         string             `json:"key,omitempty" yaml:"key,omitempty"`
}

// ParseFormat accepts a format name case-insensitively. "yml" is an alias
// for yaml.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "yml" {
		return FormatYAML, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want yaml, json, csv or xlsx)", s)
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q", path)
	}
	return ParseFormat(ext)
}

// Entries converts recipes into export entries, preserving order.
func Entries(recipes []*types.Recipe) []Entry {
	entries := make([]Entry, 0, len(recipes))
	for _, r := range recipes {
		if r == nil {
			continue
		}
		entries = append(entries, Entry{
			ID:          r.ID,
			Title:       r.Title,
			Publisher:   r.Publisher,
			SourceURL:   r.SourceURL,
			ImageURL:    r.ImageURL,
			CookingTime: r.CookingTime,
			Servings:    r.Servings,
			Ingredients: r.Ingredients,
			Key:         r.Key,
		})
	}
	return entries
}

// Write encodes recipes to w in format f.
func Write(w io.Writer, f Format, recipes []*types.Recipe) error {
	entries := Entries(recipes)
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatCSV:
		return writeCSV(w, entries)
	case FormatXLSX:
		return writeXLSX(w, entries)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteFile writes recipes to path, choosing the format from its
// extension. Parent directories are created as needed.
func WriteFile(path string, recipes []*types.Recipe) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(out, f, recipes); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

var header = []string{
	"id", "title", "publisher", "servings", "cooking_time", "source_url", "image_url", "ingredients", "key",
}

func row(e Entry) []string {
	return []string{
		e.ID, e.Title, e.Publisher,
		strconv.Itoa(e.Servings), strconv.Itoa(e.CookingTime),
		e.SourceURL, e.ImageURL,
		IngredientList(e.Ingredients), e.Key,
	}
}

// IngredientList joins ingredients into one "quantity unit description"
// cell, separated by "; ".
func IngredientList(ings []types.Ingredient) string {
	parts := make([]string, 0, len(ings))
	for _, ing := range ings {
		var fields []string
		if ing.Quantity != nil {
			fields = append(fields, strconv.FormatFloat(*ing.Quantity, 'f', -1, 64))
		}
		if ing.Unit != "" {
			fields = append(fields, ing.Unit)
		}
		fields = append(fields, ing.Description)
		parts = append(parts, strings.Join(fields, " "))
	}
	return strings.Join(parts, "; ")
}

func writeCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write(row(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, entries []Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", toCells(header)); err != nil {
		return err
	}
	for i, e := range entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, toCells(row(e))); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func toCells(vals []string) []interface{} {
	cells := make([]interface{}, len(vals))
	for i, v := range vals {
		cells[i] = v
	}
	return cells
}
