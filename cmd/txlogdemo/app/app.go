package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/metailurini/txlog"
	"github.com/metailurini/txlog/cmd/txlogdemo/app/options"
)

const commandDesc = `Append a sequence of commands to an in-memory transaction log index,
printing the skip list lanes after every append, then look entries up by offset.`

// NewCommand builds the demo command. Settings come from flags, then from
// environment variables prefixed with the upper-cased basename, then from
// the optional --config file.
func NewCommand(basename string) *cobra.Command {
	opts := options.New()
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           basename,
		Short:         "Demonstrate the transaction log index",
		Long:          commandDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read configuration file(%s): %w", cfgFile, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.Unmarshal(opts); err != nil {
				return err
			}
			if errs := opts.Validate(); len(errs) > 0 {
				return errors.Join(errs...)
			}
			return run(opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().SortFlags = false

	opts.AddFlags(cmd.Flags())
	v.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(basename), "-", "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())

	cmd.Flags().StringVarP(&cfgFile, "config", "C", cfgFile,
		"Read configuration from specified `FILE`, support JSON, TOML, YAML, HCL, or Java properties formats.")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.Flags().AddGoFlagSet(klogFlags)

	return cmd
}

func run(opts *options.Options, out io.Writer) error {
	logOpts := []txlog.Option{
		txlog.WithMaxLevel(opts.MaxLevel),
		txlog.WithCapacity(len(opts.ParsedEntries())),
	}
	if opts.Seed != 0 {
		logOpts = append(logOpts, txlog.WithSeed(opts.Seed))
	}
	l := txlog.New[string](logOpts...)

	for _, e := range opts.ParsedEntries() {
		if opts.Checked {
			if err := l.AppendChecked(e.Offset, e.Value); err != nil {
				return fmt.Errorf("append %q: %w", e.Value, err)
			}
		} else {
			l.Append(e.Offset, e.Value)
		}
		klog.V(2).InfoS("Appended entry", "offset", e.Offset, "length", l.Len(), "maxLevel", l.MaxLevel())

		if !opts.Quiet {
			printAppend(out, l, e.Offset, e.Value)
		}
	}
	if opts.Quiet {
		printLevels(out, l)
	}

	for _, offset := range opts.LookupOffsets() {
		value, found := l.Find(offset)
		klog.V(2).InfoS("Looked up offset", "offset", offset, "found", found)
		printFind(out, offset, value, found)
	}

	printStats(out, l.Stats())
	return nil
}
