package tiff

import "fmt"

// Cursor is a single forward position over the directories of a File.
// It is owned by one walk at a time and must not be shared.
type Cursor struct {
	file  *File
	index int
}

// NewCursor returns a cursor positioned on directory 0.
func NewCursor(f *File) *Cursor {
	return &Cursor{file: f}
}

// File returns the file the cursor walks.
func (c *Cursor) File() *File { return c.file }

// Index returns the current directory index.
func (c *Cursor) Index() int { return c.index }

// Directory returns the current directory.
func (c *Cursor) Directory() *Directory { return c.file.dirs[c.index] }

// Next advances to the following directory. It returns false, leaving the
// position unchanged, when no directory remains.
func (c *Cursor) Next() bool {
	if c.index+1 >= len(c.file.dirs) {
		return false
	}
	c.index++
	return true
}

// Seek positions the cursor on directory index.
func (c *Cursor) Seek(index int) error {
	if index < 0 || index >= len(c.file.dirs) {
		return fmt.Errorf("directory %d out of range (file has %d)", index, len(c.file.dirs))
	}
	c.index = index
	return nil
}
