package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/bigoptcube/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `serve starts an HTTP server exposing the solver over /api/solve,
loading (or building) the pruning tables from --dir on startup.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		dir, _ := cmd.Flags().GetString("dir")

		s, err := loadSolver(dir)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		server := web.NewServer(s)
		addr := host + ":" + port
		fmt.Printf("starting web server at http://%s\n", addr)
		if err := server.Start(addr); err != nil {
			fmt.Printf("error starting server: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "host to bind the server to")
	serveCmd.Flags().String("dir", ".", "directory holding the pruning table files")
}
