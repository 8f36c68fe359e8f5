package main

import (
	"fmt"

	"github.com/leandrodaf/moonlight/sdk/moonlight"
	"github.com/spf13/cobra"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List the MIDI output ports visible to this host",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ports := moonlight.ListPorts()
		if len(ports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No MIDI output ports found")
			return
		}
		for _, p := range ports {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d: %s\n", p.Number, p.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
