package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/svcprofile/internal/config"
	"github.com/ppiankov/svcprofile/internal/identity"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config files")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap svcprofile configuration",
	Long: `Creates ~/.svcprofile/ with a default config.yaml and credentials.yaml.

The credentials file holds employee IDs and their secrets. Replace the
sample entry, ideally with bcrypt hashes from 'svcprofile hash-password'.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := config.Dir()
	if configDir == "" {
		return fmt.Errorf("cannot determine home directory")
	}

	var created []string

	configFile := filepath.Join(configDir, "config.yaml")
	if wrote, err := writeIfMissing(configFile, config.DefaultYAML(), 0o644); err != nil {
		return err
	} else if wrote {
		created = append(created, configFile)
	}

	credentialsFile := filepath.Join(configDir, "credentials.yaml")
	if wrote, err := writeIfMissing(credentialsFile, identity.DefaultCredentialsYAML(), 0o600); err != nil {
		return err
	} else if wrote {
		created = append(created, credentialsFile)
	}

	fmt.Println("svcprofile init complete.")
	fmt.Println()
	if len(created) > 0 {
		fmt.Println("Created:")
		for _, path := range created {
			fmt.Printf("  %s\n", path)
		}
		fmt.Println()
	} else {
		fmt.Println("All files already exist (use --force to overwrite).")
		fmt.Println()
	}

	fmt.Println("Profile a service:")
	fmt.Println("  svcprofile chat -u emp001")
	fmt.Println("  svcprofile form -u emp001 --name <service> --criticality 2 --classification 3")
	return nil
}

// writeIfMissing writes content to path if it doesn't exist or --force is set.
// Returns true if the file was written.
func writeIfMissing(path, content string, perm os.FileMode) (bool, error) {
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
