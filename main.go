package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"go-slist/config"
	"go-slist/datastruct/slist"
	"go-slist/lib/logger"
	"go-slist/lib/utils"
	"go-slist/script"
)

var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("slist:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "slist",
		Short:         "Build, compare and script singly linked lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(configFile); err != nil {
				return err
			}
			return logger.Setup(&logger.Settings{
				Path:       config.Props.LogPath,
				Name:       config.Props.LogName,
				Ext:        "log",
				TimeFormat: time.DateOnly,
				Level:      config.Props.LogLevel,
			})
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "properties file, defaults to ./slist.conf when present")
	root.AddCommand(newBuildCmd(), newCompareCmd(), newRunCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <value>...",
		Short: "Build a list from the given values and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := slist.Of(args...)
			printList(cmd.OutOrStdout(), l.Values())
			return nil
		},
	}
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two integer lists, e.g. compare 1,2 1,2,3",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseIntList(args[0])
			if err != nil {
				return err
			}
			b, err := parseIntList(args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "a %s\nb %s\n", a, b)
			fmt.Fprintf(w, "a == b: %t\n", slist.Equal(a, b))
			fmt.Fprintf(w, "a != b: %t\n", slist.NotEqual(a, b))
			fmt.Fprintf(w, "a <  b: %t\n", slist.Less(a, b))
			fmt.Fprintf(w, "a <= b: %t\n", slist.LessOrEqual(a, b))
			fmt.Fprintf(w, "a >  b: %t\n", slist.Greater(a, b))
			fmt.Fprintf(w, "a >= b: %t\n", slist.GreaterOrEqual(a, b))
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a YAML script of list operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			res, err := s.Run(context.Background())
			if err != nil {
				return err
			}
			logger.Info("script", args[0], "applied", res.Steps, "steps")
			printList(cmd.OutOrStdout(), res.Final)
			return nil
		},
	}
}

func parseIntList(arg string) (*slist.List[int], error) {
	ints, err := utils.ParseInts(utils.SplitValues(arg, config.Props.Separator))
	if err != nil {
		return nil, err
	}
	return slist.Of(ints...), nil
}

func printList[T any](w io.Writer, values []T) {
	head, truncated := utils.Truncate(values, config.Props.PrintLimit)
	fmt.Fprintf(w, "%v%s size=%d\n", head, utils.If(truncated, "...", ""), len(values))
}
