// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/forkify/pkg/types"
)

func qty(v float64) *float64 { return &v }

func sampleBookmarks() []*types.Recipe {
	return []*types.Recipe{
		{
			ID: "r1", Title: "Pizza", Publisher: "Closet Cooking",
			SourceURL: "http://src/1", ImageURL: "http://img/1",
			CookingTime: 45, Servings: 4, Bookmarked: true,
			Ingredients: []types.Ingredient{
				{Quantity: qty(0.5), Unit: "kg", Description: "flour"},
				{Description: "salt"},
			},
		},
		{
			ID: "r2", Title: "Rice Bowl", Publisher: "me", Servings: 2, CookingTime: 20, Key: "k1",
			Ingredients: []types.Ingredient{{Quantity: qty(1), Unit: "cup", Description: "rice"}},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{" json ", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"xlsx", FormatXLSX, false},
		{"pdf", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/out/bookmarks.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = FormatFromPath("bookmarks")
	assert.Error(t, err)
}

func TestIngredientList(t *testing.T) {
	got := IngredientList(sampleBookmarks()[0].Ingredients)
	assert.Equal(t, "0.5 kg flour; salt", got)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleBookmarks()))

	var got []Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Pizza", got[0].Title)
	assert.Equal(t, "http://src/1", got[0].SourceURL)
	assert.Nil(t, got[0].Ingredients[1].Quantity)
	assert.Equal(t, "k1", got[1].Key)
	assert.NotContains(t, buf.String(), "bookmarked")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleBookmarks()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0]["id"])
	assert.Equal(t, float64(45), got[0]["cooking_time"])
	_, hasKey := got[0]["key"]
	assert.False(t, hasKey, "key is omitted for recipes without one")
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleBookmarks()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, header, records[0])
	assert.Equal(t, []string{
		"r1", "Pizza", "Closet Cooking", "4", "45", "http://src/1", "http://img/1", "0.5 kg flour; salt", "",
	}, records[1])
	assert.Equal(t, "k1", records[2][8])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, sampleBookmarks()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "title", rows[0][1])
	assert.Equal(t, "Pizza", rows[1][1])
	assert.Equal(t, "1 cup rice", rows[2][7])
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "bookmarks.csv")
	require.NoError(t, WriteFile(path, sampleBookmarks()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "r2,Rice Bowl,me,2,20")

	err = WriteFile(filepath.Join(dir, "bookmarks.txt"), sampleBookmarks())
	assert.Error(t, err)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("pdf"), nil))
}
