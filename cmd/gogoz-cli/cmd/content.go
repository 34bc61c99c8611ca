package cmd

import (
	"fmt"

	"github.com/nfrund/gogoz/cmd/gogoz-cli/internal/report"
	"github.com/nfrund/gogoz/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fs is swapped for an in-memory filesystem in tests.
var fs = afero.NewOsFs()

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect site content",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a content file",
	Long: `Validate a content file against the site schema: required copy, navigation
anchors starting with '#', at least one testimonial, valid links and e-mail.
Without a file the embedded content is validated.

Examples:
  gogoz-cli content validate
  gogoz-cli content validate ./site.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, source, err := loadSite(args)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "❌ %s is invalid\n", sourceName(args))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid\n", source)
		fmt.Fprintf(cmd.OutOrStdout(), "   Navigation entries: %d\n", len(site.Nav))
		fmt.Fprintf(cmd.OutOrStdout(), "   Services: %d\n", len(site.Services.Items))
		fmt.Fprintf(cmd.OutOrStdout(), "   Testimonials: %d\n", len(site.Testimonials.Items))
		return nil
	},
}

var listFormat string

var contentListCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List navigation entries, services and testimonials",
	Long: `List the navigation entries, services and testimonials of a content file,
or of the embedded content when no file is given.

Examples:
  gogoz-cli content list
  gogoz-cli content list --format json ./site.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, _, err := loadSite(args)
		if err != nil {
			return err
		}
		switch listFormat {
		case "json":
			return report.JSON(cmd.OutOrStdout(), site)
		case "table":
			return report.Table(cmd.OutOrStdout(), site)
		default:
			return fmt.Errorf("unknown format %q (want table or json)", listFormat)
		}
	},
}

func loadSite(args []string) (*content.Site, string, error) {
	loader := content.NewLoader(fs)
	if len(args) == 0 {
		site, err := loader.Parse(content.EmbeddedBytes())
		return site, sourceName(args), err
	}
	site, err := loader.Load(args[0])
	return site, sourceName(args), err
}

func sourceName(args []string) string {
	if len(args) == 0 {
		return "embedded content"
	}
	return args[0]
}

func init() {
	contentListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format: table or json")
	contentCmd.AddCommand(contentValidateCmd, contentListCmd)
	rootCmd.AddCommand(contentCmd)
}
