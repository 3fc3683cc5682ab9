package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PineappleTF/AssetInstaller/steam"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the detected Steam manifest and TF2 directory",
	Args:  cobra.NoArgs,
	RunE:  runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	vdfPath, err := steam.LocateLibraryFolders()
	if err != nil {
		return err
	}
	fmt.Printf("library manifest: %s\n", vdfPath)

	gameDir, err := steam.LocateGameDir(vdfPath, tf2AppID, tf2GameFolder, tf2Marker)
	if err != nil {
		return err
	}
	fmt.Printf("game directory:   %s\n", gameDir)
	return nil
}
