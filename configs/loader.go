package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE config files once, on first lookup. Earlier paths take
// priority over later ones.
type Loader struct {
	paths    []string
	getFiles func() ([]configFile, error)
}

type configFile struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,
		getFiles: sync.OnceValues(func() ([]configFile, error) {
			schema, err := compileSchema(schemaSrc)
			if err != nil {
				return nil, err
			}
			files := make([]configFile, 0, len(filePaths))
			for _, filePath := range filePaths {
				file, err := loadFile(filePath, schema)
				if err != nil {
					return nil, err
				}
				files = append(files, file)
			}
			return files, nil
		}),
	}
}

// compileSchema closes the schema fields, so files setting unknown keys fail
// validation. An empty source disables validation.
func compileSchema(src string) (cue.Value, error) {
	if src == "" {
		return cue.Value{}, nil
	}
	schema := cuecontext.New().CompileString("close({"+src+"})", cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func loadFile(path string, schema cue.Value) (configFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return configFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	value := cuecontext.New().CompileBytes(content, cue.Filename(path))
	if err := value.Err(); err != nil {
		return configFile{}, fmt.Errorf("compile %s: %w", path, err)
	}
	if schema.Exists() {
		if err := schema.Unify(value).Validate(); err != nil {
			return configFile{}, fmt.Errorf("validate %s: %w", path, err)
		}
	}
	return configFile{
		value: value,
		path:  path,
	}, nil
}

// Paths returns the files the loader reads, in priority order.
func (l Loader) Paths() []string {
	return l.paths
}

// lookup yields the files setting path, with the value found in each.
func (l Loader) lookup(path string) iter.Seq2[configFile, error] {
	return func(yield func(configFile, error) bool) {
		files, err := l.getFiles()
		if err != nil {
			yield(configFile{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, file := range files {
			value := file.value.LookupPath(cuePath)
			if value.Err() != nil || !value.Exists() {
				continue
			}
			if !yield(configFile{value: value, path: file.path}, nil) {
				return
			}
		}
	}
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		for file, err := range l.lookup(path) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&file.value, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for file, err := range l.lookup(path) {
		if err != nil {
			return err
		}
		if err := file.value.Decode(target); err != nil {
			return fmt.Errorf("decode %s in %s: %w", path, file.path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
