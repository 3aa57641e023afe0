// Package flagx lets several components parse their own flags out of one
// command line without tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// flagName strips one or two leading dashes: "-c", "--c" and "c" all name c.
func flagName(arg string) string {
	return strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
}

// FilterArgs returns the subset of args made of allowed flags and their
// values, in their original order.
//
// Supported forms:
//
//	-c conf.json      flag and value as separate arguments
//	--config=x.json   flag and value joined with '='
//
// Names in allowed and boolFlags may be written with or without dashes, and
// a flag matches whether it is given with one dash or two. Flags listed in
// boolFlags never take the following argument as their value.
func FilterArgs(args []string, allowed []string, boolFlags ...string) []string {
	names := make(map[string]bool, len(allowed)+len(boolFlags))
	for _, f := range allowed {
		names[flagName(f)] = false
	}
	for _, f := range boolFlags {
		names[flagName(f)] = true
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" || arg == "--" {
			continue
		}

		name, _, hasValue := strings.Cut(flagName(arg), "=")
		isBool, ok := names[name]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if hasValue || isBool {
			continue
		}

		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" when neither is present. Other arguments are ignored.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"c", "config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
