package shaders

import "errors"

// ErrInvalid is returned when sources fail to compile or link.
var ErrInvalid = errors.New("shader failed to compile or link")

// Program is what the GL loader reports for a compiled shader.
type Program struct {
	ID        uint32
	DefaultID uint32 // id the loader falls back to when linking fails
	Valid     bool
}

// Check rejects programs that did not compile or that silently fell back to
// the loader's default program.
func (p Program) Check() error {
	if !p.Valid || p.ID == 0 || p.ID == p.DefaultID {
		return ErrInvalid
	}
	return nil
}
