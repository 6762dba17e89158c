package offsets

import (
	"github.com/gb-at-r3/janus-array/internal/mmfile"
)

// FileMapping couples a root File with the raw bytes backing it. The
// root spans [0, len(Data)); the caller's parser reads Data, carves out
// slices, commands and elements, and attaches them to Root.
type FileMapping struct {
	// Root spans the whole mapped file.
	Root *File
	// Data is the mapped file content. Valid until Close.
	Data []byte

	close func() error
}

// Close releases the mapping. Root and Data must not be used afterwards.
func (m *FileMapping) Close() error {
	if m.close == nil {
		return nil
	}
	return m.close()
}

// OpenFile maps the file at path (mmap on unix, whole-file read
// elsewhere) and returns a root File sized to it. No bytes are parsed;
// populating the tree below the root is the caller's job.
func OpenFile(path string) (*FileMapping, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	return &FileMapping{
		Root:  NewFile(uint64(len(data))),
		Data:  data,
		close: cleanup,
	}, nil
}
