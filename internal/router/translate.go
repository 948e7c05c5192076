package router

// legacyFlags maps the flags of the original C entry point to the
// subcommands robson-go understands. Order matches the help screen.
var legacyFlags = []struct {
	flag       string
	subcommand string
}{
	{"--help", "help"},
	{"--report", "report"},
	{"--say", "say"},
	{"--buy", "buy"},
	{"--sell", "sell"},
}

// Translate returns the subcommand for a legacy flag. ok is false for any
// other input, in which case the argument is passed through untouched.
func Translate(arg string) (subcommand string, ok bool) {
	for _, f := range legacyFlags {
		if f.flag == arg {
			return f.subcommand, true
		}
	}
	return "", false
}

// LegacyFlags lists the translatable flags in canonical order.
func LegacyFlags() []string {
	flags := make([]string, len(legacyFlags))
	for i, f := range legacyFlags {
		flags[i] = f.flag
	}
	return flags
}
