package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/byterings/hugoctl/internal/inventory"
	"github.com/byterings/hugoctl/internal/siteconfig"
	"github.com/byterings/hugoctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	newFlagTitle       string
	newFlagBaseURL     string
	newFlagTheme       string
	newFlagDescription string
	newFlagEmoji       bool
	newFlagRobots      bool
)

var (
	sitesAll    bool
	archiveYes  bool
	archiveUndo bool
)

var sitesCmd = &cobra.Command{
	Use:     "sites",
	Aliases: []string{"site"},
	Short:   "Create and manage Hugo sites",
}

var sitesNewCmd = &cobra.Command{
	Use:   "new [slug]",
	Short: "Scaffold a new Hugo site",
	Long: `Create a new site under the sites root: scaffold the directory through
the hugo binary, write its configuration document, and record the site
in the inventory.`,
	Example: `  # Interactive mode
  hugoctl sites new

  # Using flags
  hugoctl sites new my-blog --title "My Blog" --base-url https://blog.example.com/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSitesNew,
}

var sitesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sites in the inventory",
	Long:    `Display recorded sites. Shows unarchived sites by default; pass --all to include archived ones.`,
	RunE:    runSitesList,
}

var sitesArchiveCmd = &cobra.Command{
	Use:   "archive <slug>",
	Short: "Archive a site",
	Long: `Mark a site as archived. The site directory and its inventory record are
kept; archived sites drop out of the default listing. Pass --undo to
bring an archived site back.`,
	Args: cobra.ExactArgs(1),
	RunE: runSitesArchive,
}

var sitesPublishCmd = &cobra.Command{
	Use:   "publish <slug>",
	Short: "Build a site and mark it published",
	Long:  `Run a production build of the site through the hugo binary and record the publish time in the inventory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSitesPublish,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.AddCommand(sitesNewCmd)
	sitesCmd.AddCommand(sitesListCmd)
	sitesCmd.AddCommand(sitesArchiveCmd)
	sitesCmd.AddCommand(sitesPublishCmd)

	sitesNewCmd.Flags().StringVar(&newFlagTitle, "title", "", "Site title")
	sitesNewCmd.Flags().StringVar(&newFlagBaseURL, "base-url", "", "Absolute http(s) URL the site is served from")
	sitesNewCmd.Flags().StringVar(&newFlagTheme, "theme", "", "Inventory key of the theme to use")
	sitesNewCmd.Flags().StringVar(&newFlagDescription, "description", "", "Short site description")
	sitesNewCmd.Flags().BoolVar(&newFlagEmoji, "emoji", false, "Enable emoji shortcodes in content")
	sitesNewCmd.Flags().BoolVar(&newFlagRobots, "robots", true, "Generate robots.txt")

	sitesListCmd.Flags().BoolVarP(&sitesAll, "all", "a", false, "Include archived sites")

	sitesArchiveCmd.Flags().BoolVarP(&archiveYes, "yes", "y", false, "Skip the confirmation prompt")
	sitesArchiveCmd.Flags().BoolVar(&archiveUndo, "undo", false, "Restore an archived site")
}

func runSitesNew(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	if cfg.SitesRoot == "" {
		return fmt.Errorf("sites_root is not configured. Run 'hugoctl init' first")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	var slug, title, baseURL, themeKey string

	// Get site info (interactive or from flags)
	if len(args) == 0 || newFlagTitle == "" || newFlagBaseURL == "" {
		// Interactive mode
		fmt.Println("Creating a new site")
		fmt.Println()

		var themeKeys []string
		for _, t := range store.ActiveThemes() {
			themeKeys = append(themeKeys, t.Key)
		}

		answers, err := ui.PromptSiteInfo(themeKeys)
		if err != nil {
			return fmt.Errorf("failed to get site info: %w", err)
		}
		slug, title, baseURL, themeKey = answers.Slug, answers.Title, answers.BaseURL, answers.Theme
	} else {
		// Flag mode
		slug = args[0]
		title = newFlagTitle
		baseURL = newFlagBaseURL
		themeKey = newFlagTheme

		if err := ui.ValidateSlug(slug); err != nil {
			return fmt.Errorf("invalid slug '%s': %w", slug, err)
		}
	}

	base, err := siteconfig.ParseBaseURL(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL '%s': %w", baseURL, err)
	}

	// The chosen theme must be known and still on disk
	if themeKey != "" {
		t, ok := store.FindTheme(themeKey)
		if !ok {
			return fmt.Errorf("theme '%s' is not in the inventory. Run 'hugoctl sync' first", themeKey)
		}
		if !t.Active {
			return fmt.Errorf("theme '%s' is inactive, its directory is gone from the themes root", themeKey)
		}
	}

	if _, ok := store.FindSite(slug); ok {
		return fmt.Errorf("site '%s' already exists in the inventory", slug)
	}

	siteDir := filepath.Join(cfg.SitesRoot, slug)
	if _, err := os.Stat(siteDir); err == nil {
		return fmt.Errorf("site directory already exists: %s", siteDir)
	}

	// Build the configuration document
	doc := &siteconfig.Config{BaseURL: base}
	doc.Title = &title
	lang := siteconfig.DefaultLanguageCode
	doc.LanguageCode = &lang
	pagerSize := inventory.DefaultPagerSize
	doc.Pagination = &siteconfig.Pagination{PagerSize: &pagerSize}
	doc.EnableRobotsTXT = &newFlagRobots
	if newFlagEmoji {
		doc.EnableEmoji = &newFlagEmoji
	}
	if newFlagDescription != "" {
		doc.Params = map[string]any{"description": newFlagDescription}
	}
	if themeKey != "" {
		doc.Theme = &themeKey
		// Themes live in the shared themes root, not under the site tree
		doc.Extra = map[string]any{"themesDir": cfg.ThemesRoot}
	}

	text, err := doc.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize site configuration: %w", err)
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}

	if err := runner.NewSite(siteDir, text); err != nil {
		return err
	}

	// Record the site
	tx, err := store.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin inventory transaction: %w", err)
	}

	site := inventory.Site{
		Slug:         slug,
		Name:         title,
		Title:        title,
		Description:  newFlagDescription,
		BaseURL:      base.String(),
		Theme:        themeKey,
		PagerSize:    inventory.DefaultPagerSize,
		EnableEmoji:  newFlagEmoji,
		EnableRobots: newFlagRobots,
	}
	if err := tx.CreateSite(site); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record site (directory %s was created): %w", siteDir, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to record site (directory %s was created): %w", siteDir, err)
	}

	fmt.Println()
	ui.Success(fmt.Sprintf("Site '%s' created at %s", slug, siteDir))
	fmt.Println()
	fmt.Printf("Next: hugoctl sites publish %s\n", slug)

	return nil
}

func runSitesList(cmd *cobra.Command, args []string) error {
	if _, err := requireConfig(); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	sites := store.Sites()
	if !sitesAll {
		var unarchived []inventory.Site
		for _, s := range sites {
			if !s.Archived {
				unarchived = append(unarchived, s)
			}
		}
		sites = unarchived
	}

	ui.PrintSitesTable(sites)
	return nil
}

func runSitesArchive(cmd *cobra.Command, args []string) error {
	slug := args[0]

	if _, err := requireConfig(); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	site, ok := store.FindSite(slug)
	if !ok {
		return fmt.Errorf("site '%s' not found", slug)
	}

	if archiveUndo {
		return restoreSite(store, site)
	}

	if site.Archived {
		ui.Info(fmt.Sprintf("Site '%s' is already archived", slug))
		return nil
	}

	// Confirm before archiving
	if !archiveYes {
		confirmed, err := ui.PromptConfirmation(fmt.Sprintf("Archive site '%s' (%s)?", site.Slug, site.Title))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	tx, err := store.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin inventory transaction: %w", err)
	}
	if _, err := tx.SetSiteArchived(slug, true); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to archive site: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to archive site: %w", err)
	}

	ui.Success(fmt.Sprintf("Site '%s' archived", slug))
	fmt.Println("The site directory is untouched; only the inventory record changed.")

	return nil
}

func restoreSite(store *inventory.Store, site inventory.Site) error {
	if !site.Archived {
		ui.Info(fmt.Sprintf("Site '%s' is not archived", site.Slug))
		return nil
	}

	tx, err := store.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin inventory transaction: %w", err)
	}
	if _, err := tx.SetSiteArchived(site.Slug, false); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore site: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to restore site: %w", err)
	}

	ui.Success(fmt.Sprintf("Site '%s' restored", site.Slug))
	return nil
}

func runSitesPublish(cmd *cobra.Command, args []string) error {
	slug := args[0]

	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	site, ok := store.FindSite(slug)
	if !ok {
		return fmt.Errorf("site '%s' not found", slug)
	}
	if site.Archived {
		return fmt.Errorf("site '%s' is archived. Run 'hugoctl sites archive %s --undo' first", slug, slug)
	}

	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}

	siteDir := filepath.Join(cfg.SitesRoot, slug)
	scoped, err := runner.ForSite(siteDir)
	if err != nil {
		return err
	}

	fmt.Printf("Building %s...\n", siteDir)
	if err := scoped.Build(); err != nil {
		return err
	}

	tx, err := store.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin inventory transaction: %w", err)
	}
	if err := tx.MarkSitePublished(slug); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record publish: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to record publish: %w", err)
	}

	ui.Success(fmt.Sprintf("Site '%s' published, output in %s", slug, filepath.Join(siteDir, "public")))

	return nil
}
