package cli

import (
    "errors"
    "fmt"
    "io"
    "os"

    "github.com/spf13/cobra"

    "colcrt/internal/colcrt"
    "colcrt/internal/config"
    "colcrt/internal/locale"
    "colcrt/internal/system"
)

type rootOptions struct {
    noUnderlining bool
    loneHyphen    bool
    halfLines     bool
    version       bool
}

// usageError marks a bad command line.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(o *rootOptions) *cobra.Command {
    cmd := &cobra.Command{
        Use:   "colcrt [options] [<file>...]",
        Short: "Filter nroff output for CRT previewing.",
        Long: "colcrt renders nroff output for display terminals. Underlined text and\n" +
            "half-line motions are shown as a row of dashes beneath the line.\n" +
            "A lone '-' argument is the same as --no-underlining.",
        Args: cobra.ArbitraryArgs,
        RunE: func(cmd *cobra.Command, args []string) error {
            if o.version {
                printVersion(cmd.OutOrStdout())
                return nil
            }
            return o.run(cmd, args)
        },
        SilenceUsage:  true,
        SilenceErrors: true,
    }
    f := cmd.Flags()
    f.BoolVar(&o.noUnderlining, "no-underlining", false, "suppress all underlining")
    f.BoolVarP(&o.halfLines, "half-lines", "2", false, "print all half-lines")
    f.BoolVarP(&o.version, "version", "V", false, "display version")
    cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
        return &usageError{err}
    })
    return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
    cfg, err := config.Load()
    if err != nil {
        return err
    }
    system.Logger.SetLevel(cfg.LogLevel)

    enc, err := locale.Lookup(cfg.Charset)
    if err != nil {
        system.Logger.Warn("falling back to UTF-8", "err", err)
        enc = nil
    }
    out := locale.NewWriter(cmd.OutOrStdout(), enc)

    f := colcrt.New(out, colcrt.Options{
        NoUnderlining: o.noUnderlining || o.loneHyphen,
        HalfLines:     o.halfLines,
    })
    f.Logger = system.Logger
    f.Decode = locale.Decoder(enc)

    err = f.Run(args, cmd.InOrStdin())
    if cerr := out.Close(); err == nil {
        err = cerr
    }
    return err
}

// stripLoneHyphen removes every "-" argument. It reports whether any was
// found; a lone hyphen turns underlining off.
func stripLoneHyphen(args []string) ([]string, bool) {
    out := make([]string, 0, len(args))
    found := false
    for _, a := range args {
        if a == "-" {
            found = true
            continue
        }
        out = append(out, a)
    }
    return out, found
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
    o := &rootOptions{}
    args, o.loneHyphen = stripLoneHyphen(args)
    cmd := newRootCmd(o)
    cmd.SetArgs(args)
    cmd.SetIn(stdin)
    cmd.SetOut(stdout)
    cmd.SetErr(stderr)
    return cmd.Execute()
}

// Execute runs the CLI.
func Execute() {
    err := execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
    if err == nil {
        return
    }
    var uerr *usageError
    if errors.As(err, &uerr) {
        fmt.Fprintf(os.Stderr, "colcrt: %v\nTry 'colcrt --help' for more information.\n", uerr.err)
    } else {
        system.Logger.Error(err)
    }
    os.Exit(1)
}
