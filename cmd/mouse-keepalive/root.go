package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedantwpatil/mouse-keepalive/internal/config"
	"github.com/vedantwpatil/mouse-keepalive/internal/keepalive"
)

var version = "0.1.0"

func newRootCmd(newCursor cursorFactory, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "mouse-keepalive",
		Short: "Keep the system awake by nudging the mouse / 自动移动鼠标，防止系统进入休眠或锁定",
		Long: `Moves the mouse cursor by one pixel and straight back at a fixed interval,
so the operating system sees input activity without any visible movement.

自动移动鼠标工具：定期将鼠标移动一个像素并立即移回，防止系统休眠或锁定。`,
		Example: `  mouse-keepalive                     # every 60s, until Ctrl+C / 每60秒移动一次，无限运行
  mouse-keepalive -i 30               # every 30s / 每30秒移动一次
  mouse-keepalive -i 120 -d 3600      # every 120s for one hour / 每120秒移动一次，运行1小时
  mouse-keepalive -v                  # show cursor positions / 显示详细日志
  mouse-keepalive --format json       # structured output`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return NewApplication(cfg, newCursor, out).Run()
		},
	}
	config.RegisterFlags(root.Flags())

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of mouse-keepalive",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mouse-keepalive v%s\n", version)
		},
	})
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string) int {
	return execute(args, robotCursor, os.Stdout, os.Stderr)
}

func execute(args []string, newCursor cursorFactory, out, errOut io.Writer) int {
	root := newRootCmd(newCursor, out)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err == nil {
		return 0
	}

	// The reporter has already printed capability failures.
	var capErr *keepalive.CapabilityError
	if !errors.As(err, &capErr) {
		fmt.Fprintf(errOut, "错误 / Error: %v\n", err)
	}
	return 1
}
