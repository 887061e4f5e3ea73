package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Query a running server's status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			client := &http.Client{Timeout: 10 * time.Second}
			url := "http://" + dialAddress(cfg.Paths.Bind) + "/api/status"
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return fmt.Errorf("build status request: %w", err)
			}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("query %s: %w (is the server running? start it with `tooba serve`)", url, err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("query %s: unexpected status %s", url, resp.Status)
			}

			var payload struct {
				Running  bool   `json:"running"`
				Library  string `json:"library"`
				Shows    int    `json:"shows"`
				Episodes int    `json:"episodes"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				return fmt.Errorf("decode status response: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Running:  %s\n", yesNo(payload.Running))
			fmt.Fprintf(out, "Library:  %s\n", payload.Library)
			fmt.Fprintf(out, "Shows:    %d\n", payload.Shows)
			fmt.Fprintf(out, "Episodes: %d\n", payload.Episodes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw status payload")
	return cmd
}

// dialAddress turns a listen address into something a client can connect
// to: wildcard hosts become loopback.
func dialAddress(bind string) string {
	host, port, err := net.SplitHostPort(bind)
	if err != nil {
		return bind
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
