package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hookline/hookline/internal/config"
	"github.com/hookline/hookline/internal/forge"
	"github.com/hookline/hookline/internal/policy"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Verify configuration and credentials",
	Long: `Checks that the channel endpoints and forge credentials are configured,
the policy file (if any) parses, and the log path is writable.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	allOK := true

	fmt.Println("=== hookline doctor ===")
	fmt.Println()

	fmt.Print("Staff channel ............ ")
	if cfg.Channels.StaffURL == "" {
		fmt.Println("FAIL (channels.staff_url not set)")
		allOK = false
	} else {
		fmt.Println("OK")
	}

	fmt.Print("External channel ......... ")
	if cfg.Channels.ExternalURL == "" {
		fmt.Println("FAIL (channels.external_url not set)")
		allOK = false
	} else {
		fmt.Println("OK")
	}

	fmt.Print("Forge credentials ........ ")
	if cfg.Forge.Token == "" {
		fmt.Println("FAIL (forge.token not set)")
		allOK = false
	} else if _, err := forge.New(cfg.Forge); err != nil {
		fmt.Printf("FAIL (%s)\n", err)
		allOK = false
	} else {
		provider := cfg.Forge.Provider
		if provider == "" {
			provider = "github"
		}
		fmt.Printf("OK (%s)\n", provider)
	}

	fmt.Print("Policy ................... ")
	if cfg.Policy.Path == "" {
		fmt.Println("OK (built-in defaults)")
	} else if _, err := policy.Load(cfg.Policy.Path); err != nil {
		fmt.Printf("FAIL (%s)\n", err)
		allOK = false
	} else {
		fmt.Printf("OK (%s)\n", cfg.Policy.Path)
	}

	fmt.Print("Log path ................. ")
	if err := checkWritable(cfg.Log.Path); err != nil {
		fmt.Printf("FAIL (%s)\n", err)
		allOK = false
	} else {
		fmt.Printf("OK (%s)\n", cfg.Log.Path)
	}

	fmt.Println()
	if !allOK {
		return fmt.Errorf("one or more checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkWritable(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
