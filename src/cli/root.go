// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/helper/posix"
	x509inventory "github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/x509/inventory"
	"github.com/H0llyW00dzZ/x509-cert-inventory/src/logger"
)

var (
	// ErrConflictingPath is returned when PATH and --cert-file name different locations.
	ErrConflictingPath = errors.New("PATH argument and --cert-file disagree")
	// ErrUnknownSortKey is returned for a --sort-by value other than expires or name.
	ErrUnknownSortKey = errors.New("unknown sort key")
	// ErrUnknownLogFormat is returned for a --log-format value other than text or json.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

const (
	sortByExpires = "expires"
	sortByName    = "name"

	logFormatText = "text"
	logFormatJSON = "json"
)

// options holds the parsed command-line flags of one invocation.
type options struct {
	certFile     string
	testCA       bool
	mnsOnly      bool
	sortBy       string
	sortName     bool
	days         bool
	csv          bool
	output       string
	recursive    bool
	skipInvalid  bool
	loader       string
	openssl      string
	subjectOrder string
	logLevel     int
	logFormat    string
	configFile   string
}

// normalizeFlagName lets users spell every flag with underscores as well as dashes.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// NewRootCommand builds the command. The report goes to the command's
// stdout and diagnostics go to log. A nil log means a [logger.CLILogger].
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}
	exeName := posix.GetExecutableName()

	cmd := &cobra.Command{
		Use:   exeName + " [PATH]",
		Short: "Report expiration dates of X.509 certificates in a certificate store",
		Long: `Scans a directory (or a single file) of PEM certificates, keeps the newest
certificate per subject or node id, and prints a sorted report.

PATH defaults to the production store, or the test store with --test-ca.`,
		Example: fmt.Sprintf(`  %[1]s
  %[1]s -m --sort-by name -d
  %[1]s -t -c > test-ca.csv
  %[1]s -r -o json --skip-invalid /etc/dataone/certs
  %[1]s path/to/urn_node_KNB.pem`, exeName),
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, log)
		},
	}
	cmd.SetVersionTemplate("Version: {{.Version}}\n")

	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizeFlagName)
	flags.StringVar(&opts.certFile, "cert-file", "", "certificate file or directory (same as PATH)")
	flags.BoolVarP(&opts.testCA, "test-ca", "t", false, "default to the test certificate store")
	flags.BoolVarP(&opts.mnsOnly, "mns-only", "m", false, "only node certificates, keyed by node id")
	flags.StringVar(&opts.sortBy, "sort-by", sortByExpires, "sort order: expires or name")
	flags.BoolVarP(&opts.sortName, "sort-name", "n", false, "sort by name (same as --sort-by name)")
	flags.BoolVarP(&opts.days, "days", "d", false, "show days until expiration instead of the date")
	flags.BoolVarP(&opts.csv, "csv", "c", false, "CSV output (same as --output csv)")
	flags.StringVarP(&opts.output, "output", "o", "", "output format: "+strings.Join(x509inventory.Formats(), ", "))
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "scan directories recursively")
	flags.BoolVar(&opts.skipInvalid, "skip-invalid", false, "log and skip unreadable certificates instead of failing")
	flags.StringVar(&opts.loader, "loader", "", "certificate loader: native or openssl")
	flags.StringVar(&opts.openssl, "openssl", "", "openssl binary for the openssl loader")
	flags.StringVar(&opts.subjectOrder, "subject-order", "", "subject component order: reversed or encoded")
	flags.CountVarP(&opts.logLevel, "log-level", "l", "increase log verbosity (-l info, -ll debug)")
	flags.StringVar(&opts.logFormat, "log-format", logFormatText, "log format: text or json")
	flags.StringVar(&opts.configFile, "config", "", "YAML or JSON config file (env "+ConfigEnv+")")

	return cmd
}

// Execute runs the root command with os.Args.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

func run(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	log, err := setupLogger(cmd, opts, log)
	if err != nil {
		return err
	}

	config, err := LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), opts, config)

	path, err := certPath(args, opts, config)
	if err != nil {
		return err
	}

	format, err := outputFormat(opts, config)
	if err != nil {
		return err
	}
	sortKey, err := sortKeyFor(opts)
	if err != nil {
		return err
	}

	loader, err := x509inventory.NewLoader(config.Loader.Kind, config.Loader.OpenSSL)
	if err != nil {
		return err
	}
	subject, err := x509inventory.SubjectFormatterFor(config.Subject.Order)
	if err != nil {
		return err
	}

	scanner := x509inventory.NewScanner(loader, log)
	scanner.Subject = subject
	scanner.Recursive = config.Scan.Recursive
	scanner.SkipInvalid = config.Scan.SkipInvalid

	log.Infof("scanning %s (loader=%s recursive=%t)", path, config.Loader.Kind, scanner.Recursive)
	result, err := scanner.Scan(cmd.Context(), path)
	if err != nil {
		return err
	}
	if result.Skipped != nil {
		log.Warnf("%d certificate file(s) skipped: %v", len(result.Skipped.Errors), result.Skipped.ErrorOrNil())
	}

	nodesOnly := opts.mnsOnly
	if result.Single {
		// A single file is always reported, whatever its subject.
		nodesOnly = false
		sortKey = x509inventory.SortExpires
	}

	keyBy := x509inventory.KeySubject
	if nodesOnly {
		keyBy = x509inventory.KeyNodeID
	}
	inv := x509inventory.Deduplicate(result.Records, keyBy, nodesOnly)
	log.Infof("%d certificate(s) read, %d kept (key=%s sort=%s)", len(result.Records), inv.Len(), keyBy, sortKey)

	reporter := &x509inventory.Reporter{
		Format:    format,
		Days:      opts.days,
		NodesOnly: nodesOnly,
		Now:       time.Now().UTC(),
	}
	return reporter.Render(cmd.OutOrStdout(), inv, sortKey)
}

// setupLogger applies --log-format and --log-level. The text format keeps
// the caller's logger and its output; the JSON format writes to the
// command's stderr.
func setupLogger(cmd *cobra.Command, opts *options, log logger.Logger) (logger.Logger, error) {
	switch opts.logFormat {
	case logFormatText, "":
		if log == nil {
			log = logger.NewCLILogger()
		}
	case logFormatJSON:
		log = logger.NewJSONLogger(cmd.ErrOrStderr())
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownLogFormat, opts.logFormat, logFormatText, logFormatJSON)
	}
	log.SetLevel(logger.LevelFromCount(opts.logLevel))
	return log, nil
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(flags *pflag.FlagSet, opts *options, config *Config) {
	if flags.Changed("recursive") {
		config.Scan.Recursive = opts.recursive
	}
	if flags.Changed("skip-invalid") {
		config.Scan.SkipInvalid = opts.skipInvalid
	}
	if opts.loader != "" {
		config.Loader.Kind = opts.loader
	}
	if opts.openssl != "" {
		config.Loader.OpenSSL = opts.openssl
	}
	if opts.subjectOrder != "" {
		config.Subject.Order = opts.subjectOrder
	}
}

// certPath picks the location to scan: PATH, then --cert-file, then the
// configured production or test store.
func certPath(args []string, opts *options, config *Config) (string, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	switch {
	case arg != "" && opts.certFile != "" && arg != opts.certFile:
		return "", fmt.Errorf("%w: %q vs %q", ErrConflictingPath, arg, opts.certFile)
	case arg != "":
		return arg, nil
	case opts.certFile != "":
		return opts.certFile, nil
	case opts.testCA:
		return config.Paths.Test, nil
	default:
		return config.Paths.Production, nil
	}
}

// outputFormat resolves --csv, --output and the configured default, in that order.
func outputFormat(opts *options, config *Config) (x509inventory.Format, error) {
	switch {
	case opts.csv:
		return x509inventory.FormatCSV, nil
	case opts.output != "":
		return x509inventory.ParseFormat(opts.output)
	default:
		return x509inventory.ParseFormat(config.Report.Format)
	}
}

// sortKeyFor maps --sort-by and --sort-name to a sort key. "name" means
// the node id when only node certificates are listed, the subject otherwise.
func sortKeyFor(opts *options) (x509inventory.SortKey, error) {
	sortBy := strings.ToLower(opts.sortBy)
	if opts.sortName {
		sortBy = sortByName
	}
	switch sortBy {
	case sortByExpires, "":
		return x509inventory.SortExpires, nil
	case sortByName:
		if opts.mnsOnly {
			return x509inventory.SortNodeID, nil
		}
		return x509inventory.SortSubject, nil
	default:
		return x509inventory.SortExpires, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownSortKey, opts.sortBy, sortByExpires, sortByName)
	}
}
