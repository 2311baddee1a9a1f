package app

import "github.com/spf13/pflag"

// RegisterFlags registers all CLI flags on the given FlagSet
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("content-dir", "c", "", "Content directory containing the site's markdown sources")
	flags.StringP("output", "o", "", "Output file for the search records, or - for stdout")
	flags.StringP("base-url", "b", "", "Site base URL used to build canonical URLs")
	flags.StringP("lang", "l", "", "Language code stamped on every record")
	flags.IntP("max-fulltext", "m", 0, "Maximum fulltext size per record in bytes")
	flags.BoolP("include-drafts", "d", false, "Index draft content")
	flags.String("log-level", "", "Log level: debug, info, warn, or error")
}
