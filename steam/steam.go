// Package steam locates a Steam installation and the install directories
// of individual apps, using the libraryfolders.vdf manifest.
package steam

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

var (
	// ErrSteamNotFound means no Steam installation could be located.
	ErrSteamNotFound = errors.New("steam installation not found")

	// ErrAppNotFound means no library folder lists the requested app.
	ErrAppNotFound = errors.New("app not present in any library folder")

	// ErrGameNotFound means a library folder lists the app but the game
	// directory is missing or incomplete on disk.
	ErrGameNotFound = errors.New("game directory not found")
)

// LocateLibraryFolders returns the path of steamapps/libraryfolders.vdf.
// It probes the two directories bin_steam.sh installs into, and falls back
// to the launch directory of a running steam.sh process. The fallback only
// helps while Steam is actually running.
func LocateLibraryFolders() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if p, ok := libraryFoldersIn(candidateDirs(home)); ok {
		return p, nil
	}
	if dir, ok := steamDirFromProcesses(); ok {
		if p, ok := libraryFoldersIn([]string{dir}); ok {
			return p, nil
		}
	}
	return "", ErrSteamNotFound
}

func candidateDirs(home string) []string {
	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
	}
}

func libraryFoldersIn(dirs []string) (string, bool) {
	for _, dir := range dirs {
		p := filepath.Join(dir, "steamapps", "libraryfolders.vdf")
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// steamDirFromProcesses scans the process table for "bash .../steam.sh"
// and returns the script's directory.
func steamDirFromProcesses() (string, bool) {
	procs, err := process.Processes()
	if err != nil {
		return "", false
	}
	for _, pr := range procs {
		args, err := pr.CmdlineSlice()
		if err != nil || len(args) < 2 {
			continue
		}
		if filepath.Base(args[0]) != "bash" {
			continue
		}
		script := args[len(args)-1]
		if strings.HasSuffix(script, "/steam.sh") {
			return filepath.Dir(script), true
		}
	}
	return "", false
}
