package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/bigoptcube/internal/prune"
)

var buildTablesCmd = &cobra.Command{
	Use:   "build-tables",
	Short: "Build (or rebuild) the pruning tables on disk",
	Long: `build-tables runs the full BFS table construction and corner-depth
computation, then writes checksummed table files into --dir. When every
table file in --dir is already present and intact, nothing is rebuilt;
otherwise all tables are rebuilt and rewritten. Use --force to rebuild
them anyway.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		force, _ := cmd.Flags().GetBool("force")

		if force {
			if err := removeTableFiles(dir); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}

		fmt.Println("building pruning tables, this takes a while...")
		if _, _, err := prune.LoadOrBuild(dir); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("tables ready in", dir)
	},
}

func init() {
	buildTablesCmd.Flags().String("dir", ".", "directory holding the table files")
	buildTablesCmd.Flags().Bool("force", false, "rebuild even if intact table files exist")
}

// removeTableFiles deletes any existing shard/corner table files in dir,
// ignoring files that are already absent.
func removeTableFiles(dir string) error {
	for _, name := range prune.TableFileNames(dir) {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	return nil
}
