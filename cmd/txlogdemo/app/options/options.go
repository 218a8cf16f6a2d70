package options

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/metailurini/txlog"
)

// Entry is one command to append. Offsets are either given explicitly as
// "OFFSET:VALUE" or follow the previous entry.
type Entry struct {
	Offset uint64
	Value  string
}

// Options holds the demo's flags. Field tags name the viper keys, which match
// the flag names.
type Options struct {
	Entries  []string `mapstructure:"entries"`
	Start    uint64   `mapstructure:"start"`
	Lookups  []string `mapstructure:"lookup"`
	Seed     uint64   `mapstructure:"seed"`
	MaxLevel int      `mapstructure:"max-level"`
	Checked  bool     `mapstructure:"checked"`
	Quiet    bool     `mapstructure:"quiet"`

	entries []Entry
	lookups []uint64
}

// New creates Options with the values of the classic three-entry demo.
func New() *Options {
	return &Options{
		Entries:  []string{"First", "Second", "Third"},
		Lookups:  []string{"1"},
		MaxLevel: txlog.MaxLevel,
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&o.Entries, "entries", "e", o.Entries,
		"Commands to append, in order. Prefix with OFFSET: to pin an offset")
	fs.Uint64Var(&o.Start, "start", o.Start,
		"Offset of the first entry without an explicit offset")
	fs.StringSliceVarP(&o.Lookups, "lookup", "l", o.Lookups,
		"Offsets to look up after appending")
	fs.Uint64Var(&o.Seed, "seed", o.Seed,
		"Level generator seed, 0 seeds from the clock")
	fs.IntVar(&o.MaxLevel, "max-level", o.MaxLevel,
		"Maximum number of skip list levels")
	fs.BoolVar(&o.Checked, "checked", o.Checked,
		"Reject entries whose offset does not increase")
	fs.BoolVarP(&o.Quiet, "quiet", "q", o.Quiet,
		"Print the structure once at the end instead of after every append")
}

// Validate parses entries and lookups and checks ranges.
func (o *Options) Validate() []error {
	var errs []error

	if len(o.Entries) == 0 {
		errs = append(errs, fmt.Errorf("--entries: at least one entry is required"))
	}
	if o.MaxLevel < 1 || o.MaxLevel > txlog.MaxLevel {
		errs = append(errs, fmt.Errorf("--max-level: %d is outside [1, %d]", o.MaxLevel, txlog.MaxLevel))
	}

	o.entries = o.entries[:0]
	next, exhausted := o.Start, false
	for _, raw := range o.Entries {
		e, explicit := parseEntry(raw, next)
		if !explicit && exhausted {
			errs = append(errs, fmt.Errorf("--entries: %q has no offset left after %d", raw, uint64(math.MaxUint64)))
			continue
		}
		o.entries = append(o.entries, e)
		next, exhausted = e.Offset+1, e.Offset == math.MaxUint64
	}

	o.lookups = o.lookups[:0]
	for _, raw := range o.Lookups {
		offset, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("--lookup: %q is not an offset: %w", raw, err))
			continue
		}
		o.lookups = append(o.lookups, offset)
	}

	return errs
}

// ParsedEntries returns the entries resolved by Validate.
func (o *Options) ParsedEntries() []Entry {
	return o.entries
}

// LookupOffsets returns the lookups resolved by Validate.
func (o *Options) LookupOffsets() []uint64 {
	return o.lookups
}

// parseEntry reports whether raw carried its own offset.
func parseEntry(raw string, next uint64) (Entry, bool) {
	if prefix, value, ok := strings.Cut(raw, ":"); ok {
		if offset, err := strconv.ParseUint(prefix, 10, 64); err == nil {
			return Entry{Offset: offset, Value: value}, true
		}
	}
	return Entry{Offset: next, Value: raw}, false
}
