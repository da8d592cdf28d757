package service

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"magicwriting/internal/library"
	"magicwriting/internal/models"
)

func TestExportServiceSnapshot(t *testing.T) {
	s := NewExportService(nil)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	all := s.Snapshot("")
	assert.Len(t, all.Vocabulary, len(library.AllVocabulary()))
	assert.Len(t, all.Phrases, len(library.AllPhrases()))
	assert.Len(t, all.SentencePatterns, len(library.AllSentencePatterns()))
	assert.Equal(t, 2026, all.ExportedAt.Year())

	animals := s.Snapshot(models.ThemeAnimals)
	require.NotEmpty(t, animals.Vocabulary)
	assert.LessOrEqual(t, len(animals.Vocabulary), library.MaxResults)
	for _, v := range animals.Vocabulary {
		assert.Equal(t, models.ThemeAnimals, v.Theme)
	}
}

func TestExportToWriterFormats(t *testing.T) {
	s := NewExportService(nil)

	var jsonBuf bytes.Buffer
	require.NoError(t, s.ExportToWriter(&jsonBuf, FormatJSON, models.ThemeSchool))
	var fromJSON ExportData
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	assert.Equal(t, models.ThemeSchool, fromJSON.Theme)
	assert.NotEmpty(t, fromJSON.Vocabulary)

	var yamlBuf bytes.Buffer
	require.NoError(t, s.ExportToWriter(&yamlBuf, FormatYAML, models.ThemeSchool))
	var fromYAML ExportData
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Equal(t, fromJSON.Vocabulary, fromYAML.Vocabulary)

	assert.Error(t, s.ExportToWriter(&bytes.Buffer{}, "xml", ""))
}

func TestExportServiceSearch(t *testing.T) {
	res := NewExportService(nil).Search("My Pet Dog")
	assert.Equal(t, models.ThemeAnimals, res.Theme)
	assert.Equal(t, library.SearchVocabulary("My Pet Dog"), res.Vocabulary)
}
