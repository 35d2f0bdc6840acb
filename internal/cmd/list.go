package cmd

import (
	"github.com/spf13/cobra"

	"github.com/laminakit/lamina/internal/discovery"
	"github.com/laminakit/lamina/internal/output"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var (
		flagTarget string
		flagTree   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List selectable payload fragments",
		Long: `List shows the fragment root (folders first, then fragment files, each
alphabetical) followed by legacy fixture files. Reserved names starting
with "_" are layer inputs, not selectable fragments, and are excluded.

With --target, the target's local legacy payloads are included and
labeled LOCAL; shared fixtures are labeled SHARED.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lister := newLister()

			if flagTree {
				return runListTree(lister, flagTarget)
			}

			for _, entry := range lister.List(flagTarget) {
				output.Println(output.FormatListingLine(entry.Label, entry.DisplayName))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagTarget, "target", "", "target function whose local payloads to include")
	cmd.Flags().BoolVar(&flagTree, "tree", false, "render the fragment root as a tree")

	return cmd
}

// runListTree renders the whole fragment tree with the target's legacy
// fixtures appended under their SHARED/LOCAL labels.
func runListTree(lister *discovery.Lister, target string) error {
	entries := treeEntries(lister, target)

	if len(entries) == 0 {
		output.Println("no fragments found")
		return nil
	}

	output.Print(output.RenderFragmentTree(GetConfig().PayloadsDir, entries))
	return nil
}

// treeEntries maps root-relative fragment paths to display labels. Structured
// fragments carry no label; legacy fixtures keep their SHARED/LOCAL label.
func treeEntries(lister *discovery.Lister, target string) map[string]string {
	entries := map[string]string{}
	for _, rel := range lister.Walk() {
		entries[rel] = ""
	}

	for _, e := range lister.List(target) {
		if e.Kind == discovery.KindLegacy {
			entries[e.DisplayName] = e.Label
		}
	}

	return entries
}
