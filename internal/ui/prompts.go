package ui

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"

	"github.com/byterings/hugoctl/internal/siteconfig"
)

// SiteAnswers collects everything needed to scaffold a new site.
type SiteAnswers struct {
	Slug    string
	Title   string
	BaseURL string
	Theme   string
}

// PromptSiteInfo prompts for new site details interactively. themeKeys
// lists the active themes offered for selection.
func PromptSiteInfo(themeKeys []string) (*SiteAnswers, error) {
	answers := &SiteAnswers{}

	// Prompt for slug
	slugPrompt := &survey.Input{
		Message: "Site slug (directory name):",
		Help:    "Lowercase letters, digits and hyphens - becomes the directory under your sites root",
	}
	slugValidator := func(val interface{}) error {
		if str, ok := val.(string); ok {
			return ValidateSlug(str)
		}
		return nil
	}
	if err := survey.AskOne(slugPrompt, &answers.Slug, survey.WithValidator(survey.Required), survey.WithValidator(slugValidator)); err != nil {
		return nil, err
	}

	// Prompt for title
	titlePrompt := &survey.Input{
		Message: "Site title:",
		Help:    "Shown in the browser tab and site header (e.g., My Blog)",
	}
	if err := survey.AskOne(titlePrompt, &answers.Title, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	// Prompt for base URL
	urlPrompt := &survey.Input{
		Message: "Base URL:",
		Help:    "Absolute http(s) URL the site will be served from (e.g., https://example.com/)",
	}
	urlValidator := func(val interface{}) error {
		if str, ok := val.(string); ok {
			if _, err := siteconfig.ParseBaseURL(str); err != nil {
				return err
			}
		}
		return nil
	}
	if err := survey.AskOne(urlPrompt, &answers.BaseURL, survey.WithValidator(survey.Required), survey.WithValidator(urlValidator)); err != nil {
		return nil, err
	}

	// Prompt for theme
	if len(themeKeys) > 0 {
		themePrompt := &survey.Select{
			Message: "Theme:",
			Options: themeKeys,
		}
		if err := survey.AskOne(themePrompt, &answers.Theme); err != nil {
			return nil, err
		}
	}

	return answers, nil
}

// InitAnswers are the paths gathered during hugoctl init.
type InitAnswers struct {
	SitesRoot  string
	ThemesRoot string
	HugoPath   string
}

// PromptInitSettings prompts for the tool's root directories and binary
// path, seeded with platform defaults.
func PromptInitSettings(defaultSitesRoot, defaultThemesRoot, defaultHugoPath string) (*InitAnswers, error) {
	answers := &InitAnswers{}

	sitesPrompt := &survey.Input{
		Message: "Sites root directory:",
		Default: defaultSitesRoot,
		Help:    "Where hugoctl creates and manages site trees",
	}
	if err := survey.AskOne(sitesPrompt, &answers.SitesRoot, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	themesPrompt := &survey.Input{
		Message: "Themes root directory:",
		Default: defaultThemesRoot,
		Help:    "Directory scanned recursively for theme.toml descriptors",
	}
	if err := survey.AskOne(themesPrompt, &answers.ThemesRoot, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	hugoPrompt := &survey.Input{
		Message: "Hugo binary path:",
		Default: defaultHugoPath,
		Help:    "Full path to the hugo executable",
	}
	if err := survey.AskOne(hugoPrompt, &answers.HugoPath, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	return answers, nil
}

// PromptConfirmation prompts for yes/no confirmation
func PromptConfirmation(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// ValidateSlug rejects strings that are not safe directory-name slugs.
func ValidateSlug(slug string) error {
	if !isValidSlug(slug) {
		return fmt.Errorf("use lowercase letters, digits and hyphens only")
	}
	return nil
}

// isValidSlug checks if a slug is safe to use as a directory name
func isValidSlug(slug string) bool {
	re := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	return re.MatchString(slug)
}
