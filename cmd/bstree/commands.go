package main

import (
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/g-m-twostay/bstree/Trees/snapshot"
)

const (
	cfgOrder  = "order"
	cfgOut    = "out"
	cfgRemove = "remove"

	envPrefix = "BSTREE"
)

type app struct {
	cfg    *viper.Viper
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New()}
	a.cfg.SetEnvPrefix(envPrefix)
	a.cfg.AutomaticEnv()

	root := &cobra.Command{
		Use:           "bstree",
		Short:         "Build and inspect binary search trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = log.New(cmd.ErrOrStderr(), "bstree: ", 0)
		},
	}
	root.PersistentFlags().String(cfgOrder, "in", "Traversal to print: in, pre, post or level")
	_ = a.cfg.BindPFlag(cfgOrder, root.PersistentFlags().Lookup(cfgOrder))

	build := &cobra.Command{
		Use:   "build [int...]",
		Short: "Add the given integers to a new tree and print it",
		RunE:  a.runBuild,
	}
	build.Flags().String(cfgOut, "", "Write a snapshot of the tree to this file")
	build.Flags().IntSlice(cfgRemove, nil, "Remove these elements after building")
	_ = a.cfg.BindPFlag(cfgOut, build.Flags().Lookup(cfgOut))
	_ = a.cfg.BindPFlag(cfgRemove, build.Flags().Lookup(cfgRemove))

	show := &cobra.Command{
		Use:   "show <snapshot>",
		Short: "Decode a snapshot and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}

	root.AddCommand(build, show)
	return root
}

func traversal(t *Trees.BST[int], order string) (iter.Seq[int], error) {
	switch order {
	case "in":
		return t.All(), nil
	case "pre":
		return t.PreOrder(), nil
	case "post":
		return t.PostOrder(), nil
	case "level":
		return t.LevelOrder(), nil
	}
	return nil, fmt.Errorf("unknown order %q", order)
}

func (a *app) print(w io.Writer, t *Trees.BST[int]) error {
	seq, err := traversal(t, a.cfg.GetString(cfgOrder))
	if err != nil {
		return err
	}
	var sb strings.Builder
	for v := range seq {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	_, err = fmt.Fprintf(w, "%s: [%s]\nsize: %d\nheight: %d\n", a.cfg.GetString(cfgOrder), sb.String(), t.Size(), t.Height())
	return err
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	t := Trees.New[int]()
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("parse element: %w", err)
		}
		if !t.Add(v) {
			a.logger.Printf("skipping duplicate %d", v)
		}
	}
	for _, v := range a.cfg.GetIntSlice(cfgRemove) {
		n := t.Find(v)
		if n == nil {
			a.logger.Printf("%d is not in the tree", v)
			continue
		}
		if _, err := t.Remove(n); err != nil {
			return err
		}
	}
	if err := a.print(cmd.OutOrStdout(), t); err != nil {
		return err
	}
	if out := a.cfg.GetString(cfgOut); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := snapshot.Encode(f, t); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		a.logger.Printf("wrote snapshot of %d elements to %s", t.Size(), out)
	}
	return nil
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	t, err := snapshot.DecodeOrdered[int](f)
	if err != nil {
		return err
	}
	return a.print(cmd.OutOrStdout(), t)
}
