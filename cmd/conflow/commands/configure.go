package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"conflow/internal/config"
)

var (
	configureSets           []string
	configureYes            bool
	configurePrint          bool
	configureNonInteractive bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Create or edit the configuration file interactively or via flags",
	Long: `Interactively create or edit the Conflow configuration file
(config.yaml by default).

Features:
- Interactive prompts for the Confluence and export sections
- Apply key=value overrides via --set
- Non-interactive scripting with --non-interactive --yes --set ...
- Print resulting YAML with --print instead of writing
`,
	Example: `  conflow configure
  conflow configure --non-interactive --yes \
    --set confluence.base_url=https://example.atlassian.net/wiki \
    --set confluence.username=me@example.com \
    --set confluence.api_token=secret`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().StringArrayVar(&configureSets, "set", nil, "Set a config field using dotted path (e.g. confluence.base_url=http://example)")
	configureCmd.Flags().BoolVar(&configureYes, "yes", false, "Automatically confirm saving changes")
	configureCmd.Flags().BoolVar(&configurePrint, "print", false, "Print resulting YAML instead of writing to file")
	configureCmd.Flags().BoolVar(&configureNonInteractive, "non-interactive", false, "Disable interactive prompts (use with --set)")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	path := config.ResolveConfigPath(configFile)
	cfg, existed, err := loadOrInitConfig(path)
	if err != nil {
		return err
	}

	// Apply flag mutations first (non-interactive layer)
	if err := applySetOperations(cfg, configureSets); err != nil {
		return err
	}

	interactive := !configureNonInteractive
	if interactive {
		if err := interactiveEdit(cfg, existed); err != nil {
			return err
		}
	}

	outYAML, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if configurePrint {
		cmd.Print(string(outYAML))
		return nil
	}

	if !configureYes && interactive {
		confirm := false
		prompt := &survey.Confirm{Message: "Save configuration to " + path + "?", Default: true}
		if err := survey.AskOne(prompt, &confirm); err != nil {
			return err
		}
		if !confirm {
			fmt.Println("Aborted (no changes saved).")
			return nil
		}
	}

	if err := cfg.Save(path); err != nil {
		return err
	}
	cmd.Printf("Configuration saved to %s\n", path)
	return nil
}

func loadOrInitConfig(path string) (*config.Config, bool, error) {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		cfg, err := config.LoadRelaxed(path)
		if err != nil {
			return nil, true, err
		}
		return cfg, true, nil
	}
	return &config.Config{}, false, nil
}

func applySetOperations(cfg *config.Config, sets []string) error {
	for _, s := range sets {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid --set value '%s' (expected key=value)", s)
		}
		if err := setField(cfg, parts[0], parts[1]); err != nil {
			return fmt.Errorf("set %s: %w", parts[0], err)
		}
	}
	return nil
}

func setField(cfg *config.Config, key, value string) error {
	switch key {
	case "confluence.base_url":
		cfg.Confluence.BaseURL = value
	case "confluence.username":
		cfg.Confluence.Username = value
	case "confluence.api_token":
		cfg.Confluence.APIToken = value
	case "confluence.space_key":
		cfg.Confluence.SpaceKey = value
	case "confluence.flavor":
		cfg.Confluence.Flavor = value
	case "export.poll_interval_seconds":
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Export.PollIntervalSeconds = v
	case "export.max_polls":
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Export.MaxPolls = v
	default:
		return fmt.Errorf("unsupported key '%s'", key)
	}
	return nil
}

// Interactive editing -------------------------------------------------------

func interactiveEdit(cfg *config.Config, existed bool) error {
	fmt.Println("Interactive configuration editor. Press Enter to accept defaults.")
	if existed {
		fmt.Println("Loaded existing configuration. You can modify sections.")
	}

	if err := promptConfluence(cfg); err != nil {
		return err
	}
	return promptExport(cfg)
}

func promptConfluence(cfg *config.Config) error {
	flavor := cfg.Confluence.Flavor
	if flavor == "" {
		flavor = config.FlavorCloud
	}
	qs := []*survey.Question{
		{Name: "base_url", Prompt: &survey.Input{Message: "Confluence Base URL", Default: cfg.Confluence.BaseURL}},
		{Name: "username", Prompt: &survey.Input{Message: "Confluence Username", Default: cfg.Confluence.Username}},
		{Name: "api_token", Prompt: &survey.Password{Message: "Confluence API Token (leave blank to keep)"}},
		{Name: "space_key", Prompt: &survey.Input{Message: "Default Space Key (optional)", Default: cfg.Confluence.SpaceKey}},
		{Name: "flavor", Prompt: &survey.Select{Message: "API Flavor", Options: []string{config.FlavorCloud, config.FlavorServer}, Default: flavor}},
	}
	answers := struct {
		BaseURL  string `survey:"base_url"`
		Username string `survey:"username"`
		APIToken string `survey:"api_token"`
		SpaceKey string `survey:"space_key"`
		Flavor   string `survey:"flavor"`
	}{}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}
	cfg.Confluence.BaseURL = answers.BaseURL
	cfg.Confluence.Username = answers.Username
	if answers.APIToken != "" { // keep existing if blank
		cfg.Confluence.APIToken = answers.APIToken
	}
	cfg.Confluence.SpaceKey = answers.SpaceKey
	cfg.Confluence.Flavor = answers.Flavor
	return nil
}

func promptExport(cfg *config.Config) error {
	var edit bool
	if err := survey.AskOne(&survey.Confirm{Message: "Edit PDF export settings?", Default: false}, &edit); err != nil {
		return err
	}
	if !edit {
		return nil
	}
	qs := []*survey.Question{
		{Name: "interval", Prompt: &survey.Input{Message: "Poll Interval (seconds)", Default: intToStringOr(cfg.Export.PollIntervalSeconds, 5)}},
		{Name: "max_polls", Prompt: &survey.Input{Message: "Max Polls", Default: intToStringOr(cfg.Export.MaxPolls, 120)}},
	}
	answers := struct {
		Interval string `survey:"interval"`
		MaxPolls string `survey:"max_polls"`
	}{}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}
	if v, err := strconv.Atoi(answers.Interval); err == nil {
		cfg.Export.PollIntervalSeconds = v
	}
	if v, err := strconv.Atoi(answers.MaxPolls); err == nil {
		cfg.Export.MaxPolls = v
	}
	return nil
}

func intToStringOr(v int, fallback int) string {
	if v == 0 {
		return fmt.Sprintf("%d", fallback)
	}
	return fmt.Sprintf("%d", v)
}
