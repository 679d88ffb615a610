package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

const updateRepo = "venkatsunilm/photo-post-processing"

var updateYes bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update photoproc to the latest GitHub release",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := semver.ParseTolerant(Version)
		if err != nil {
			return fmt.Errorf("cannot parse built-in version %q: %w", Version, err)
		}
		fmt.Printf("Current version: %s\n", current)

		latest, found, err := selfupdate.DetectLatest(updateRepo)
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}
		if !found || latest.Version.LTE(current) {
			fmt.Println("Already up to date.")
			return nil
		}
		fmt.Printf("Latest version: %s\n", latest.Version)

		if !updateYes {
			fmt.Print("Update now? (y/N): ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			answer := strings.ToLower(strings.TrimSpace(line))
			if answer != "y" && answer != "yes" {
				fmt.Println("Update cancelled.")
				return nil
			}
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("could not locate executable: %w", err)
		}
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}
		fmt.Printf("Updated to %s. Restart to use the new version.\n", latest.Version)
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(updateCmd)
}
