package file

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"ztask/errors"
)

const (
	CargoManifest  = "Cargo.toml"
	workspaceTable = "[workspace]"
)

var AppFs = afero.NewOsFs()

func IsFile(path string) (bool, error) {
	info, err := AppFs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf(errors.FileStatErrorTpl, path, err)
	}
	return info.Mode().IsRegular(), nil
}

func IsDir(path string) (bool, error) {
	info, err := AppFs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf(errors.FileStatErrorTpl, path, err)
	}
	return info.IsDir(), nil
}

func ReadFile(path string) ([]byte, error) {
	b, err := afero.ReadFile(AppFs, path)
	if err != nil {
		return nil, fmt.Errorf(errors.FileReadErrorTpl, path, err)
	}
	return b, nil
}

// ReadDirNames returns the names of the entries in dir, sorted by name.
func ReadDirNames(dir string) ([]string, error) {
	infos, err := afero.ReadDir(AppFs, dir)
	if err != nil {
		return nil, fmt.Errorf(errors.FileReadErrorTpl, dir, err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

func HasCargoManifest(dir string) (bool, error) {
	return IsFile(filepath.Join(dir, CargoManifest))
}

func isWorkspaceManifest(path string) (bool, error) {
	b, err := ReadFile(path)
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == workspaceTable {
			return true, nil
		}
	}
	return false, nil
}

// FindProjectRoot walks up from start looking for Cargo.toml. The highest
// directory declaring a [workspace] wins, otherwise the nearest manifest does.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	nearest := ""
	workspace := ""
	for {
		manifest := filepath.Join(dir, CargoManifest)
		exists, err := IsFile(manifest)
		if err != nil {
			return "", err
		}
		if exists {
			slog.Debug("Found manifest " + manifest)
			if nearest == "" {
				nearest = dir
			}
			isWorkspace, err := isWorkspaceManifest(manifest)
			if err != nil {
				return "", err
			}
			if isWorkspace {
				workspace = dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if workspace != "" {
		return workspace, nil
	}
	if nearest != "" {
		return nearest, nil
	}
	return "", &errors.ProjectNotFoundError{Start: start}
}
