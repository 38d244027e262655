package anilist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PizzaHomicide/anicompare/internal/domain"
)

// DecodeDocument reads a saved collection.  Accepted shapes are a full GraphQL response
// ({"data":{"MediaListCollection":...}}), an object holding MediaListCollection, or the bare collection object.
func DecodeDocument(r io.Reader) (*domain.CollectionDocument, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}

	var envelope struct {
		Data                json.RawMessage `json:"data"`
		MediaListCollection json.RawMessage `json:"MediaListCollection"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	if len(envelope.Data) > 0 {
		var data struct {
			MediaListCollection json.RawMessage `json:"MediaListCollection"`
		}
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: data: %v", domain.ErrMalformedInput, err)
		}
		raw = data.MediaListCollection
	} else if len(envelope.MediaListCollection) > 0 {
		raw = envelope.MediaListCollection
	}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: missing MediaListCollection", domain.ErrMalformedInput)
	}

	doc := &domain.CollectionDocument{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%w: MediaListCollection: %v", domain.ErrMalformedInput, err)
	}
	return doc, nil
}

// LoadDocument reads a saved collection from disk
func LoadDocument(path string) (*domain.CollectionDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
