package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/natal-cli/internal/tzdb"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the natal version, the MCP server version and the size of the
embedded timezone catalogue used to validate timezone answers.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("natal version %s\n", version)
		cmd.Printf("  MCP server: %s\n", mcp.Version)
		cmd.Printf("  Timezones: %d canonical names\n", tzdb.Len())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
