package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

const resolutionBaseName = "resolved"

// ResolutionFileAdapter writes batch results into an output directory.
type ResolutionFileAdapter struct {
	Dir    string
	Format types.OutputFormat
}

func NewResolutionFileAdapter(dir string, format types.OutputFormat) ResolutionFileAdapter {
	return ResolutionFileAdapter{Dir: dir, Format: format}
}

// ResolutionFileName is the file a batch writes for the given format.
func ResolutionFileName(format types.OutputFormat) string {
	if format == types.OutputFormatJSON {
		return resolutionBaseName + ".json"
	}
	return resolutionBaseName + ".yaml"
}

func (a ResolutionFileAdapter) WriteResolution(file types.ResolutionFile) (string, error) {
	path, err := a.ensurePath(ResolutionFileName(a.Format))
	if err != nil {
		return "", err
	}
	var data []byte
	switch a.Format {
	case types.OutputFormatJSON:
		data, err = json.MarshalIndent(file, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case types.OutputFormatYAML, "":
		data, err = yaml.Marshal(file)
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(a.Format))
	}
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode resolution file").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write resolution file").
			WithCause(err)
	}
	return path, nil
}

func (a ResolutionFileAdapter) ensurePath(name string) (string, error) {
	if strings.TrimSpace(a.Dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, name), nil
}

// ResolutionReaderAdapter reads files written by ResolutionFileAdapter.
// JSON is a subset of YAML, so one decoder covers both formats.
type ResolutionReaderAdapter struct{}

func NewResolutionReaderAdapter() ResolutionReaderAdapter {
	return ResolutionReaderAdapter{}
}

func (a ResolutionReaderAdapter) ReadResolution(path string) (types.ResolutionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResolutionFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("resolution file not found").
			WithCause(err)
	}
	var file types.ResolutionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return types.ResolutionFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid resolution file format").
			WithCause(err)
	}
	return file, nil
}

var _ ports.ResolutionOutputPort = ResolutionFileAdapter{}
var _ ports.ResolutionReaderPort = ResolutionReaderAdapter{}
