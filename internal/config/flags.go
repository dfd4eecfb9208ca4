package config

import (
	"flag"
	"os"
	"strings"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-host string       database host
//	-port string       database port
//	-name string       database name
//	-user string       database user
//	-password string   database password
//
// os.Args is first filtered to only the flags handled here, so the
// config flags can coexist with flags owned by other packages (the
// go test runner in particular).
func parseFlags(config *Config) {
	args := filterArgs(os.Args[1:], []string{"-host", "-port", "-name", "-user", "-password"})

	fs := flag.NewFlagSet("db", flag.ContinueOnError)

	fs.StringVar(&config.Host, "host", config.Host, "database host")
	fs.StringVar(&config.Port, "port", config.Port, "database port")
	fs.StringVar(&config.Name, "name", config.Name, "database name")
	fs.StringVar(&config.User, "user", config.User, "database user")
	fs.StringVar(&config.Password, "password", config.Password, "database password")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// filterArgs returns the subset of args containing only the allowed flags
// and their values. Both "-flag value" and "-flag=value" forms are kept.
func filterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
