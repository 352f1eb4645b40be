package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultConfigPath is where `archsite init` writes and every command reads.
const DefaultConfigPath = ".archsite.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .archsite.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to archsite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content backend.
	backendPrompt := promptui.Select{
		Label: "Select content backend",
		Items: []string{
			"mock - local JSON/YAML fixtures",
			"cms  - Hygraph GraphQL endpoint",
		},
	}
	backendIdx, _, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend selection: %w", err)
	}
	backends := []BackendType{BackendMock, BackendCMS}
	cfg.Backend = backends[backendIdx]

	// 2. Backend location.
	if cfg.Backend == BackendMock {
		dirPrompt := promptui.Prompt{
			Label:   "Content fixtures directory",
			Default: cfg.ContentDir,
		}
		if cfg.ContentDir, err = dirPrompt.Run(); err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
	} else {
		endpointPrompt := promptui.Prompt{
			Label:   "GraphQL endpoint URL",
			Default: os.Getenv("HYGRAPH_ENDPOINT"),
			Validate: func(s string) error {
				if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
					return fmt.Errorf("endpoint must be an http(s) URL")
				}
				return nil
			},
		}
		if cfg.CMS.Endpoint, err = endpointPrompt.Run(); err != nil {
			return nil, fmt.Errorf("cms endpoint: %w", err)
		}
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Contact delivery.
	notifierPrompt := promptui.Select{
		Label: "How should contact inquiries be delivered",
		Items: []string{string(NotifierLog), string(NotifierSMTP), string(NotifierWebhook)},
	}
	_, notifier, err := notifierPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("notifier selection: %w", err)
	}
	cfg.Contact.Notifier = NotifierType(notifier)

	if cfg.Contact.Notifier == NotifierWebhook {
		hookPrompt := promptui.Prompt{Label: "Webhook URL"}
		if cfg.Contact.WebhookURL, err = hookPrompt.Run(); err != nil {
			return nil, fmt.Errorf("webhook url: %w", err)
		}
	}

	recipientPrompt := promptui.Prompt{
		Label:   "Inquiry recipient email",
		Default: cfg.Contact.Recipient,
	}
	if cfg.Contact.Recipient, err = recipientPrompt.Run(); err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}

	if cfg.Backend == BackendCMS && os.Getenv("HYGRAPH_TOKEN") == "" {
		fmt.Println("\nNote: Set HYGRAPH_TOKEN in your environment if the endpoint requires auth.")
	}
	if cfg.Contact.Notifier == NotifierSMTP && os.Getenv("SMTP_USER") == "" {
		fmt.Println("\nNote: Set SMTP_HOST, SMTP_USER and SMTP_PASS before running archsite server.")
	}

	if err := cfg.Save(DefaultConfigPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigPath)
	return cfg, nil
}

// SplitAndTrim splits a comma-separated string, trimming whitespace and
// dropping empty entries.
func SplitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
