package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"

	"TouchBoard/internal/board"
)

// SaveToFile writes the current stroke snapshot as JSON.
func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[persist] close writer: %v", err)
		}
	}()

	strokes := b.core.Strokes.Snapshot()
	jsonData, err := json.MarshalIndent(strokes, "", "  ")
	if err != nil {
		log.Printf("[persist] marshal: %v", err)
		b.SetStatus("Error saving file")
		return
	}

	if _, err := writer.Write(jsonData); err != nil {
		log.Printf("[persist] write: %v", err)
		b.SetStatus("Error writing file")
		return
	}
	b.SetStatus(fmt.Sprintf("Saved %d strokes", len(strokes)))
}

// LoadFromFile replaces the stroke collection with the contents of a
// previously saved board.
func (b *BoardWidget) LoadFromFile(reader fyne.URIReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("[persist] close reader: %v", err)
		}
	}()

	jsonData, err := io.ReadAll(reader)
	if err != nil {
		log.Printf("[persist] read: %v", err)
		b.SetStatus("Error reading file")
		return
	}

	var strokes []board.Stroke
	if err := json.Unmarshal(jsonData, &strokes); err != nil {
		log.Printf("[persist] unmarshal: %v", err)
		b.SetStatus("Error parsing file - invalid format")
		return
	}

	b.core.Strokes.Replace(strokes)
	b.Refresh()
	b.SetStatus(fmt.Sprintf("Loaded %d strokes", len(strokes)))
}
