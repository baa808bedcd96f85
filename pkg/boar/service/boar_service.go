package service

import (
	"bytes"
	"errors"

	"herdbook/entities"
)

var (
	// ErrBadLayout means the uploaded workbook's header layout was not
	// recognized as either accepted import format.
	ErrBadLayout = errors.New("unrecognized spreadsheet layout")
	// ErrUnknownLine means a row carried a line code with no identifier
	// mapping.
	ErrUnknownLine = errors.New("unknown line code")
)

type ImportResult struct {
	Inserted int
	Message  string
}

type BoarService interface {
	// Import parses the workbook at path, skips tattoos already registered
	// and appends the remainder to storage under farmID. filename is only
	// used in the user-facing message.
	Import(path, filename string, farmID uint) (*ImportResult, error)
	// Export renders the boars as a styled workbook and returns the
	// serialized bytes together with a timestamped download filename.
	Export(boars []entities.Boar) (*bytes.Buffer, string, error)
}
