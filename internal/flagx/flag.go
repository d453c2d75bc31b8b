// Package flagx lets independent configuration loaders share os.Args: each
// loader picks out the flags it owns and parses only those.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs returns the subset of args made of the allowed flags and their
// values, preserving order.
//
// Both "-f value" and "-f=value" forms are recognised. A value is taken from
// the next argument only when that argument does not itself start with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// stringFlag parses os.Args for a single string flag known under names and
// returns its last value, or "" when absent.
func stringFlag(set string, usage string, names ...string) string {
	var value string

	fs := flag.NewFlagSet(set, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, strings.TrimLeft(n, "-"), "", usage)
	}
	_ = fs.Parse(FilterArgs(os.Args[1:], names))

	return value
}

// JsonConfigFlags returns the JSON config file path given by -c or -config,
// or "" when neither is present.
func JsonConfigFlags() string {
	return stringFlag("json", "Path to config file", "-c", "-config")
}

// EnvFileFlag returns the dotenv file path given by -env-file, or "" when
// absent.
func EnvFileFlag() string {
	return stringFlag("env", "Path to .env file", "-env-file")
}
