package service

import (
	"net/url"
	"unicode/utf8"

	"github.com/Totarae/RentalTracker/internal/model"
)

// Ограничения длины полей в символах, совпадают со схемой БД
// (VARCHAR(n) в PostgreSQL считает символы, не байты).
const (
	maxNameLen      = 256
	maxAddressLen   = 512
	maxLinkLen      = 1024
	maxViewerLen    = 256
	maxFirstNameLen = 256
	maxNotesLen     = 65535
)

func validateName(name string) error {
	if name == "" {
		return validationErr("name", "name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return validationErr("name", "name is too long")
	}
	return nil
}

func validateAddress(address string) error {
	if utf8.RuneCountInString(address) > maxAddressLen {
		return validationErr("address", "address is too long")
	}
	return nil
}

func validateLink(link string) error {
	if link == "" {
		return validationErr("link", "link is required")
	}
	if utf8.RuneCountInString(link) > maxLinkLen {
		return validationErr("link", "link is too long")
	}
	parsed, err := url.ParseRequestURI(link)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return validationErr("link", "must be a valid URL")
	}
	return nil
}

func validateViewer(viewer string) error {
	if viewer == "" {
		return validationErr("viewer", "viewer is required")
	}
	if utf8.RuneCountInString(viewer) > maxViewerLen {
		return validationErr("viewer", "viewer is too long")
	}
	return nil
}

func validateNotes(notes *string) error {
	if notes != nil && utf8.RuneCountInString(*notes) > maxNotesLen {
		return validationErr("notes", "notes are too long")
	}
	return nil
}

func validateStatus(status model.Status) error {
	if !status.Valid() {
		return validationErr("status", "unknown status value")
	}
	return nil
}

func validateFirstName(firstName string) error {
	if firstName == "" {
		return validationErr("firstName", "first name is required")
	}
	if utf8.RuneCountInString(firstName) > maxFirstNameLen {
		return validationErr("firstName", "first name is too long")
	}
	return nil
}
