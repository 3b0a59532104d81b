package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowbmp/shadowbmp/internal/refimg"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <bmp-path>",
	Short: "print a bitmap's header fields and attempt a generic BMP decode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := refimg.Inspect(args[0])
		if err != nil {
			return err
		}
		fmt.Println(info.String())
		return nil
	},
}
