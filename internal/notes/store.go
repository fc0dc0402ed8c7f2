// Package notes keeps the scratch notepad text in a small on-disk key-value
// store.
package notes

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/peterbourgon/diskv/v3"

	"github.com/Paintersrp/qb/internal/constants"
)

var ErrNoStore = errors.New("notes store is not open")

// Store persists values under string keys, one file per key.
type Store struct {
	d   *diskv.Diskv
	dir string
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create notes directory: %w", err)
	}

	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 256 * 1024,
		}),
		dir: dir,
	}, nil
}

func (s *Store) Dir() string { return s.dir }

// Get returns the value stored under key, or an empty string if there is
// none.
func (s *Store) Get(key string) (string, error) {
	if s == nil || s.d == nil {
		return "", ErrNoStore
	}
	if !s.d.Has(key) {
		return "", nil
	}

	val, err := s.d.Read(key)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(val), nil
}

func (s *Store) Put(key, value string) error {
	if s == nil || s.d == nil {
		return ErrNoStore
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Buffer is the notepad text. Every change is written straight through to the
// store.
type Buffer struct {
	store     *Store
	key       string
	text      string
	clipboard func(string) error
}

type Option func(*Buffer)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(b *Buffer) { b.clipboard = write }
}

// Load reads the notepad from store. A missing entry yields an empty buffer.
func Load(store *Store, opts ...Option) (*Buffer, error) {
	b := &Buffer{store: store, key: constants.NotesKey, clipboard: clipboard.WriteAll}
	for _, opt := range opts {
		opt(b)
	}
	text, err := store.Get(b.key)
	if err != nil {
		return nil, err
	}
	b.text = text
	return b, nil
}

func (b *Buffer) Text() string { return b.text }

// Len counts characters, not bytes.
func (b *Buffer) Len() int { return utf8.RuneCountInString(b.text) }

func (b *Buffer) Set(text string) error {
	b.text = text
	return b.store.Put(b.key, text)
}

func (b *Buffer) Clear() error {
	return b.Set("")
}

// Copy places the notepad text on the system clipboard.
func (b *Buffer) Copy() error {
	if err := b.clipboard(b.text); err != nil {
		return fmt.Errorf("failed to copy notes: %w", err)
	}
	return nil
}
