package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"document-analyzer/internal/domain"
	apperrors "document-analyzer/pkg/errors"
)

// DOCXExtractor extracts plain text from DOCX bytes. A DOCX file is a zip
// container whose body text lives in word/document.xml; the extractor
// streams that part and collects the character data of <w:t> runs, emitting
// a newline at each paragraph boundary.
type DOCXExtractor struct {
	logger domain.Logger
}

// NewDOCXExtractor creates a new DOCX extractor
func NewDOCXExtractor(logger domain.Logger) *DOCXExtractor {
	return &DOCXExtractor{logger: logger}
}

const docxDocumentPart = "word/document.xml"

// Extract returns the concatenated paragraph text of the document.
func (e *DOCXExtractor) Extract(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewExtractionError("failed to open DOCX archive", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == docxDocumentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", apperrors.NewExtractionError("DOCX archive has no "+docxDocumentPart, nil)
	}

	rc, err := part.Open()
	if err != nil {
		return "", apperrors.NewExtractionError("failed to read "+docxDocumentPart, err)
	}
	defer rc.Close()

	text, err := e.collectText(rc)
	if err != nil {
		return "", apperrors.NewExtractionError("failed to parse "+docxDocumentPart, err)
	}

	e.logger.Debug("DOCX extracted", "chars", len(text))
	return text, nil
}

func (e *DOCXExtractor) collectText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var text strings.Builder
	inRun := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inRun = true
			case "tab":
				text.WriteString(" ")
			case "br":
				text.WriteString("\n")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inRun = false
			case "p":
				text.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				text.Write(el)
			}
		}
	}

	return text.String(), nil
}
