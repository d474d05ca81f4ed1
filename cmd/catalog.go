package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rota-carreira/rota/internal/careers"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the career profiles recommendations are drawn from",
	Run: func(cmd *cobra.Command, _ []string) {
		log, config := setup()

		catalog, err := careers.Load(config.CatalogFile)
		if err != nil {
			log.Fatal("loading the career catalog", zap.Error(err))
		}

		if err := writeCatalog(os.Stdout, cmd.Flag("format").Value.String(), catalog.Profiles()); err != nil {
			log.Fatal("writing catalog", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringP("format", "o", FormatText, "output format: text, json or yaml")
}

func writeCatalog(w io.Writer, format string, profiles []careers.Profile) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCARREIRA\tMODALIDADE\tHABILIDADES")
		for _, p := range profiles {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.WorkMode, strings.Join(p.Skills, ","))
		}
		return tw.Flush()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(profiles); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
