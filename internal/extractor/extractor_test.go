package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"docqa/internal/domain"
)

func TestFormatOf(t *testing.T) {
	assert.Equal(t, "pdf", FormatOf("/tmp/Report.PDF"))
	assert.Equal(t, "docx", FormatOf("letter.docx"))
	assert.Equal(t, "xlsx", FormatOf("sheets/q3.XLSX"))
	assert.Equal(t, "txt", FormatOf("notes.txt"))
	assert.Equal(t, "", FormatOf("README"))
}

func TestExtractUnknownFormat(t *testing.T) {
	e := New()
	text, err := e.Extract(domain.Document{Path: "notes.txt", Data: []byte("hello"), Format: "txt"})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "alpha"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "beta"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "gamma"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	e := New()
	text, err := e.Extract(domain.Document{Path: "cells.xlsx", Data: buf.Bytes(), Format: "xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "alpha beta\ngamma", text)
}

func TestExtractMalformedBinary(t *testing.T) {
	e := New()
	junk := []byte("this is not a real document container")
	for _, format := range []string{"pdf", "docx", "xlsx"} {
		text, err := e.Extract(domain.Document{Path: "x." + format, Data: junk, Format: format})
		require.NoError(t, err, format)
		assert.Empty(t, text, format)
	}
}

func TestExtractEmptyData(t *testing.T) {
	e := New()
	for _, format := range []string{"pdf", "docx", "xlsx"} {
		text, err := e.Extract(domain.Document{Path: "x." + format, Format: format})
		require.NoError(t, err, format)
		assert.Empty(t, text, format)
	}
}
