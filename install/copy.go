// Package install copies an asset pack into a game installation,
// reporting size-weighted progress as it goes.
package install

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// serverOnlyExts are files community server operators install manually;
// clients never need them.
var serverOnlyExts = []string{".nav", ".pop"}

// File is one file of a copy plan.
type File struct {
	Rel  string // path relative to the pack root
	Size int64
}

// CopyPlan is the result of scanning an asset pack: every directory to
// create and every file to copy, with the total byte count up front so
// progress can be weighted by size rather than file count.
type CopyPlan struct {
	SrcDir     string
	Dirs       []string
	Files      []File
	TotalBytes int64
}

// Event is emitted before each file copy starts.
type Event struct {
	Rel         string
	CopiedBytes int64 // bytes already copied when the event fires
	TotalBytes  int64
}

// Percent returns the completed fraction as a percentage.
func (e Event) Percent() float64 {
	if e.TotalBytes == 0 {
		return 100
	}
	return float64(e.CopiedBytes) * 100 / float64(e.TotalBytes)
}

// Plan scans srcDir and builds a copy plan. Server-only files (.nav,
// .pop) are excluded. Files are recorded in lexical walk order so the
// progress printout is stable between runs.
func Plan(srcDir string) (*CopyPlan, error) {
	plan := &CopyPlan{SrcDir: srcDir}
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." {
				plan.Dirs = append(plan.Dirs, rel)
			}
			return nil
		}
		for _, ext := range serverOnlyExts {
			if strings.HasSuffix(d.Name(), ext) {
				return nil
			}
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		plan.Files = append(plan.Files, File{Rel: rel, Size: info.Size()})
		plan.TotalBytes += info.Size()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning asset pack: %w", err)
	}
	return plan, nil
}

// Run copies the planned files into dstDir, creating the directory
// skeleton first. progress may be nil. File mode and modification time
// are preserved.
func (p *CopyPlan) Run(dstDir string, progress func(Event)) error {
	for _, dir := range p.Dirs {
		if err := os.MkdirAll(filepath.Join(dstDir, dir), 0o755); err != nil {
			return err
		}
	}

	var copied int64
	for _, f := range p.Files {
		if progress != nil {
			progress(Event{Rel: f.Rel, CopiedBytes: copied, TotalBytes: p.TotalBytes})
		}
		if err := copyFile(filepath.Join(p.SrcDir, f.Rel), filepath.Join(dstDir, f.Rel)); err != nil {
			return fmt.Errorf("copying %s: %w", f.Rel, err)
		}
		copied += f.Size
	}
	return nil
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	// The create-perm above does not apply when dst already existed.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
