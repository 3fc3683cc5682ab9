package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/PineappleTF/AssetInstaller/install"
	"github.com/PineappleTF/AssetInstaller/steam"
)

const (
	tf2AppID      = "440"
	tf2GameFolder = "Team Fortress 2"
	tf2Marker     = "hl2_linux"
)

var installCmd = &cobra.Command{
	Use:   "install [pack-dir]",
	Short: "Install the asset pack into the local TF2 installation",
	Long: `install copies the contents of the asset pack's tf/ directory into the
tf/ directory of the local Team Fortress 2 installation. The pack
directory defaults to the current working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if os.Geteuid() == 0 {
		return errors.New("please re-run without root permissions")
	}

	packDir := "."
	if len(args) == 1 {
		packDir = args[0]
	}
	srcDir := filepath.Join(packDir, "tf")
	if fi, err := os.Stat(srcDir); err != nil || !fi.IsDir() {
		return fmt.Errorf("no tf/ directory found in %s; run from the extracted asset pack", packDir)
	}

	vdfPath, err := steam.LocateLibraryFolders()
	if err != nil {
		return fmt.Errorf("unable to locate the Steam directory (launch Steam and re-run, or install the pack manually): %w", err)
	}
	slog.Debug("found library manifest", "path", vdfPath)

	gameDir, err := steam.LocateGameDir(vdfPath, tf2AppID, tf2GameFolder, tf2Marker)
	if err != nil {
		return fmt.Errorf("unable to locate the Team Fortress 2 directory (is the game installed?): %w", err)
	}
	fmt.Printf(">>> Found TF2 directory: %s\n", gameDir)

	plan, err := install.Plan(srcDir)
	if err != nil {
		return err
	}
	fmt.Printf(">>> Total size of assets to copy: %.2f MB\n", float64(plan.TotalBytes)/1024/1024)

	err = plan.Run(filepath.Join(gameDir, "tf"), func(ev install.Event) {
		fmt.Printf("[%.2f%%] Copying: %s\n", ev.Percent(), ev.Rel)
	})
	if err != nil {
		return err
	}

	fmt.Println(">>> Asset pack installation successful. Launch your game and have fun!")
	return nil
}
