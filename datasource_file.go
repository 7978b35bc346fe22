package calendars

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// payloadExtensions are tried in order when resolving a payload file.
var payloadExtensions = []string{".yaml", ".yml", ".json"}

// FileDataSource reads payloads laid out as <root>/<schema key>/<locale>.<ext>,
// e.g. testdata/datetime/gregory/datelengths@1/en-US.yaml.
type FileDataSource struct {
	root      string
	supported map[SchemaKey]struct{}
}

var _ DataSource = &FileDataSource{}

func NewFileDataSource(root string) *FileDataSource {
	return &FileDataSource{root: root}
}

// WithSupportedKeys restricts the source to the given keys. Requests for any
// other key fail with ErrUnsupportedSchema without touching the filesystem.
func (s *FileDataSource) WithSupportedKeys(keys ...SchemaKey) *FileDataSource {
	if s == nil || len(keys) == 0 {
		return s
	}
	if s.supported == nil {
		s.supported = make(map[SchemaKey]struct{}, len(keys))
	}
	for _, key := range keys {
		s.supported[key] = struct{}{}
	}
	return s
}

// Root returns the directory payloads are read from.
func (s *FileDataSource) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

func (s *FileDataSource) Load(req DataRequest) (DataResponse, error) {
	if s == nil || s.root == "" {
		return DataResponse{}, &DataError{Key: req.Key, Locale: req.Locale, Err: errors.New("calendars: no data directory configured")}
	}
	if s.supported != nil {
		if _, ok := s.supported[req.Key]; !ok {
			return DataResponse{}, &DataError{Key: req.Key, Locale: req.Locale, Err: ErrUnsupportedSchema}
		}
	}

	dir := filepath.Join(s.root, filepath.FromSlash(req.Key.String()))
	locale := LocaleKey(req.Locale)

	for _, ext := range payloadExtensions {
		path := filepath.Join(dir, locale+ext)
		data, err := os.ReadFile(path)
		if err == nil {
			return DataResponse{Payload: data}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return DataResponse{}, &DataError{Key: req.Key, Locale: req.Locale, Err: fmt.Errorf("read %s: %w", path, err)}
		}
	}

	return DataResponse{}, &DataError{Key: req.Key, Locale: req.Locale, Err: ErrDataUnavailable}
}

// Keys walks the root and returns the schema keys that have a directory on disk.
func (s *FileDataSource) Keys() ([]SchemaKey, error) {
	if s == nil || s.root == "" {
		return nil, nil
	}

	var keys []SchemaKey
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || !strings.Contains(d.Name(), "@") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		keys = append(keys, SchemaKey(filepath.ToSlash(rel)))
		return fs.SkipDir
	})
	if err != nil {
		return nil, fmt.Errorf("calendars: scan %s: %w", s.root, err)
	}
	return keys, nil
}
