package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barisgit/vitekit/internal/frontend"
	"github.com/barisgit/vitekit/internal/templates"
)

func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available UI frameworks and package managers",
		Long:  "Display the UI component libraries, their resolvers and the supported package managers",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	catalog, err := frontend.NewRegistryManager()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	tm, err := templates.NewManager()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	printCatalog(cmd.OutOrStdout(), catalog, tm.Manifest())
	return nil
}

func printCatalog(out io.Writer, catalog *frontend.RegistryManager, manifest *templates.Manifest) {
	fmt.Fprintln(out, "🎨 UI Frameworks:")
	for _, fw := range catalog.GetFrameworks() {
		fmt.Fprintf(out, "  • %s (%s) - %s, resolver %s\n", fw.DisplayName, fw.ID, fw.Package, fw.Resolver)
	}

	fmt.Fprintln(out, "\n📦 Package Managers:")
	for _, pm := range catalog.Registry().PackageManagers {
		fmt.Fprintf(out, "  • %s - add with '%s %s', tools via '%s', requires %s\n",
			pm.Name, pm.Name, pm.AddVerb, strings.Join(pm.Exec, " "), pm.MinVersion)
	}

	fmt.Fprintln(out, "\n🧩 Optional Features:")
	for _, feature := range []string{
		frontend.FeatureRouter, frontend.FeatureTailwind, frontend.FeaturePinia,
		frontend.FeaturePiniaPersist, frontend.FeatureAutoImport, frontend.FeatureComponents,
	} {
		fmt.Fprintf(out, "  • %s - %s\n", feature, strings.Join(catalog.FeaturePackages(feature), " "))
	}

	fmt.Fprintln(out, "\n📄 Generated Files:")
	var features []string
	files := make(map[string][]string)
	for _, a := range manifest.Artifacts {
		if _, seen := files[a.Feature]; !seen {
			features = append(features, a.Feature)
		}
		files[a.Feature] = append(files[a.Feature], a.Path)
	}
	for _, feature := range features {
		fmt.Fprintf(out, "  • %s - %s\n", feature, strings.Join(files[feature], ", "))
	}
}
