package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eaugeas/ordtree/config"
	"github.com/eaugeas/ordtree/container/tree"
	errs "github.com/eaugeas/ordtree/errors"
	"github.com/eaugeas/ordtree/logs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "ordtree"

// treeBinder holds the operations to apply to the tree. Value
// lists are comma separated so that flags, environment variables
// and the configuration file all use the same syntax
type treeBinder struct {
	Insert   []int
	Remove   []int
	Order    string
	LogLevel logrus.Level
}

func (b *treeBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("insert", "", "comma separated values to insert, in order")
	flags.String("remove", "", "comma separated values to remove after inserting")
	flags.String("order", "all", "traversal to print: in, pre, post or all")
	flags.String("log-level", "info", "log level")
	return nil
}

func (b *treeBinder) Configure(v *viper.Viper) error {
	var err error

	if b.Insert, err = parseValues(v.GetString("insert")); err != nil {
		return errors.Wrap(err, "insert")
	}
	if b.Remove, err = parseValues(v.GetString("remove")); err != nil {
		return errors.Wrap(err, "remove")
	}

	b.Order = v.GetString("order")
	switch b.Order {
	case "in", "pre", "post", "all":
	default:
		return errs.New(errs.ErrCodeInvalidOrder, "invalid order %q", b.Order)
	}

	if b.LogLevel, err = logrus.ParseLevel(v.GetString("log-level")); err != nil {
		return errors.Wrap(err, "log-level")
	}

	return nil
}

func parseValues(s string) ([]int, error) {
	var values []int

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, errs.New(errs.ErrCodeInvalidValue, "invalid value %q", field)
		}
		values = append(values, value)
	}

	return values, nil
}

type treeConfig struct {
	tree treeBinder
}

func (c *treeConfig) Use() string              { return app }
func (c *treeConfig) EnvPrefix() string        { return app }
func (c *treeConfig) Binders() []config.Binder { return []config.Binder{&c.tree} }

func run(args []string, stdout, stderr io.Writer) error {
	conf := &treeConfig{}
	parser, err := config.Generate(app, conf)
	if err != nil {
		return err
	}

	if err := parser.ParseArgs(args); err != nil {
		return err
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  conf.tree.LogLevel,
		Output: stderr,
	}).ForClass("cmd", app)
	ctx := logs.WithTraceID(context.Background(), int64(os.Getpid()))

	t := tree.NewOrdered[int]()
	for _, v := range conf.tree.Insert {
		ok := t.Insert(v)
		logger.Debug(ctx, "insert", logs.MapFields{"value": v, "inserted": ok})
	}
	for _, v := range conf.tree.Remove {
		ok := t.Remove(v)
		logger.Debug(ctx, "remove", logs.MapFields{"value": v, "removed": ok})
	}

	summary := logs.MapFields{"len": t.Len(), "height": t.Height()}
	if n := t.Min(); n != nil {
		summary.Add("min", n.Value())
	}
	if n := t.Max(); n != nil {
		summary.Add("max", n.Value())
	}
	logger.Info(ctx, "tree built", summary)

	return printTraversals(stdout, t, conf.tree.Order)
}

func printTraversals(w io.Writer, t *tree.Tree[int], order string) error {
	traversals := []struct {
		name   string
		values func() []int
	}{
		{"in", t.InOrder},
		{"pre", t.PreOrder},
		{"post", t.PostOrder},
	}

	for _, traversal := range traversals {
		if order != "all" && order != traversal.name {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", traversal.name, join(traversal.values())); err != nil {
			return errors.Wrap(err, "failed to write traversal")
		}
	}

	return nil
}

func join(values []int) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(fields, " ") + "]"
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
