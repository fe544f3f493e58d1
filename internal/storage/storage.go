// Package storage persists an address book as a single JSON file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"contactbook/internal/addressbook"
	"contactbook/internal/model"
)

const formatVersion = 1

type document struct {
	Version  int       `json:"version"`
	Contacts []contact `json:"contacts"`
}

type contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// FileStore loads and saves the whole address book at path.
type FileStore struct {
	path string
	log  *zap.Logger
}

// New creates a FileStore for path.
func New(path string, log *zap.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the address book. A missing file yields an empty book.
func (s *FileStore) Load() (*addressbook.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("no address book file, starting empty", zap.String("path", s.path))
		return addressbook.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("decode %s: unsupported version %d", s.path, doc.Version)
	}

	book := addressbook.New()
	for _, c := range doc.Contacts {
		r, err := c.record()
		if err != nil {
			return nil, fmt.Errorf("decode %s: contact %q: %w", s.path, c.Name, err)
		}
		book.AddRecord(r)
	}

	s.log.Info("address book loaded", zap.String("path", s.path), zap.Int("contacts", book.Len()))
	return book, nil
}

// Save writes book to a temporary file next to the target and renames it
// into place.
func (s *FileStore) Save(book *addressbook.AddressBook) error {
	doc := document{Version: formatVersion, Contacts: make([]contact, 0, book.Len())}
	for _, r := range book.Records() {
		doc.Contacts = append(doc.Contacts, fromRecord(r))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode address book: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}

	s.log.Info("address book saved", zap.String("path", s.path), zap.Int("contacts", book.Len()))
	return nil
}

func fromRecord(r *model.Record) contact {
	c := contact{Name: r.Name(), Phones: r.Phones()}
	if b, ok := r.Birthday(); ok {
		c.Birthday = b.String()
	}
	return c
}

func (c contact) record() (*model.Record, error) {
	if c.Name == "" {
		return nil, errors.New("empty name")
	}
	r := model.NewRecord(c.Name)
	for _, p := range c.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if c.Birthday != "" {
		if err := r.AddBirthday(c.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}
