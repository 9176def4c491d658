package main

// legacyShorthands maps multi-letter single-dash options, which pflag cannot
// declare, to their long form.
var legacyShorthands = map[string]string{ //nolint:gochecknoglobals // fixed lookup table
	"-hv": "--hide-version",
}

// normalizeArgs rewrites legacy shorthands. Arguments after "--" are left untouched.
func normalizeArgs(args []string) []string {
	result := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(result, args[i:]...)
		}
		if long, ok := legacyShorthands[arg]; ok {
			arg = long
		}
		result = append(result, arg)
	}
	return result
}
