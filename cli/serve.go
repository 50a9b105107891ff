package cli

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"epconf/server"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve build requests over a websocket at /ws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = e.cfg.Addr
			}
			upgrader := websocket.Upgrader{
				ReadBufferSize:  e.cfg.ReadBuffer,
				WriteBufferSize: e.cfg.WriteBuffer,
			}
			upgrader.CheckOrigin = func(r *http.Request) bool {
				return true
			}
			return server.NewServer(addr, upgrader, e.b).Serve()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides [server] addr)")
	return cmd
}
