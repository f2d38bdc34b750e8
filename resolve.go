package palm

import (
	"fmt"
	"strings"
)

// ResolvePicture returns the file path of pic under p's resolution mode.
// A PicsDir outside SingleDirMode is an ErrInvalidParam; use WithPicsDir.
func (p Params) ResolvePicture(pic Picture) (string, error) {
	path := pic.Name
	switch p.Mode {
	case SingleDirMode:
		if p.PicsDir != "" {
			path = joinDir(p.PicsDir, pic.Name)
		}
	default:
		if p.PicsDir != "" {
			return "", fmt.Errorf("%w: pics dir %q needs single-dir mode", ErrInvalidParam, p.PicsDir)
		}
		switch pic.Fileset {
		case FilesetOriginals:
			if p.Pics == "" {
				return "", fmt.Errorf("%w: %q", ErrNoDirectory, pic.Fileset)
			}
			path = joinDir(p.Pics, pic.Name)
		case FilesetUpdates:
			if p.UpdatedPics == "" {
				return "", fmt.Errorf("%w: %q", ErrNoDirectory, pic.Fileset)
			}
			path = joinDir(p.UpdatedPics, pic.Name)
		}
	}
	if p.Fixer != nil {
		path = p.Fixer.FixExtension(path)
	}
	return path, nil
}

// joinDir joins dir and name with exactly one "/". Unlike path.Join it does
// not clean name.
func joinDir(dir, name string) string {
	return strings.TrimRight(dir, "/") + "/" + strings.TrimLeft(name, "/")
}
