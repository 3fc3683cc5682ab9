package steam

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PineappleTF/AssetInstaller/vdf"
)

// FindAppLibraries returns the path of every library folder whose "apps"
// block lists appID, in manifest order. The manifest is not verified
// against the disk; Steam leaves stale entries behind when a game moves
// between libraries.
func FindAppLibraries(root *vdf.Mapping, appID string) ([]string, error) {
	folders, ok := root.GetMapping("libraryfolders")
	if !ok {
		return nil, fmt.Errorf(`manifest has no "libraryfolders" block`)
	}
	var libs []string
	for _, entry := range folders.Pairs() {
		folder, ok := entry.Value.(*vdf.Mapping)
		if !ok {
			continue
		}
		path, ok := folder.GetString("path")
		if !ok {
			continue
		}
		apps, ok := folder.GetMapping("apps")
		if !ok {
			continue
		}
		if apps.Has(appID) {
			libs = append(libs, path)
		}
	}
	return libs, nil
}

// FindApp returns the path of the first library folder whose "apps" block
// lists appID.
func FindApp(root *vdf.Mapping, appID string) (string, error) {
	libs, err := FindAppLibraries(root, appID)
	if err != nil {
		return "", err
	}
	if len(libs) == 0 {
		return "", ErrAppNotFound
	}
	return libs[0], nil
}

// LocateGameDir parses the libraryfolders.vdf at vdfPath and resolves the
// install directory of appID: <library>/steamapps/common/<gameFolder>.
// Every library listing the app is tried in manifest order and the first
// whose game directory actually exists on disk wins. When markerFile is
// non-empty the directory must also contain it, which filters out
// leftover directories of uninstalled games.
func LocateGameDir(vdfPath, appID, gameFolder, markerFile string) (string, error) {
	root, err := vdf.ParseFile(vdfPath)
	if err != nil {
		return "", err
	}
	libs, err := FindAppLibraries(root, appID)
	if err != nil {
		return "", err
	}
	if len(libs) == 0 {
		return "", ErrAppNotFound
	}

	for _, library := range libs {
		dir := filepath.Join(library, "steamapps", "common", gameFolder)
		fi, err := os.Stat(dir)
		if err != nil || !fi.IsDir() {
			continue
		}
		if markerFile != "" {
			mfi, err := os.Stat(filepath.Join(dir, markerFile))
			if err != nil || !mfi.Mode().IsRegular() {
				continue
			}
		}
		return dir, nil
	}
	return "", fmt.Errorf("%w: no library has %s on disk", ErrGameNotFound, gameFolder)
}
