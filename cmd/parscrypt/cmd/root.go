// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/parscrypt/parscrypt/jobqueue"
	"github.com/parscrypt/parscrypt/scrypt"
)

type config struct {
	Cost          int    `mapstructure:"cost"`
	BlockSize     int    `mapstructure:"block-size"`
	Parallel      int    `mapstructure:"parallel"`
	KeyLen        int    `mapstructure:"keylen"`
	Salt          string `mapstructure:"salt"`
	SaltHex       string `mapstructure:"salt-hex"`
	Workers       int    `mapstructure:"workers"`
	Priority      int    `mapstructure:"priority"`
	LockMemory    bool   `mapstructure:"lock-memory"`
	PasswordStdin bool   `mapstructure:"password-stdin"`
	Verbose       bool   `mapstructure:"verbose"`
	Metrics       bool   `mapstructure:"metrics"`
}

// RootCmd returns the parscrypt command. Every flag can also be set through
// a PARSCRYPT_ environment variable, e.g. PARSCRYPT_SALT_HEX.
func RootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "parscrypt",
		Short: "Derive a key with scrypt, mixing the p segments in parallel.",
		Long: `Derive a key with scrypt and print it in hex.

The password is read from the terminal without echo, or from stdin when
stdin is not a terminal or --password-stdin is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config
			if err := v.Unmarshal(&cfg); err != nil {
				return errors.Wrap(err, "reading configuration")
			}
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntP("cost", "N", 32768, "CPU/memory cost, a power of two greater than 1")
	flags.IntP("block-size", "r", 8, "block size factor")
	flags.IntP("parallel", "p", 1, "parallelization factor")
	flags.IntP("keylen", "l", 32, "derived key length in bytes")
	flags.String("salt", "", "salt as a string")
	flags.String("salt-hex", "", "salt in hex, overrides --salt")
	flags.IntP("workers", "w", 0, "mixing workers, 0 for one per CPU")
	flags.Int("priority", scrypt.DefaultPriority, "job priority, lower runs first")
	flags.Bool("lock-memory", false, "lock secret-bearing memory in RAM")
	flags.Bool("password-stdin", false, "read the password from stdin")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")
	flags.Bool("metrics", false, "print job queue metrics to stderr")

	v.SetEnvPrefix("parscrypt")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

func run(cmd *cobra.Command, cfg config) error {
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	scrypt.UseLogger(logger)
	jobqueue.UseLogger(logger)

	params, err := scrypt.NewParams(cfg.Cost, cfg.BlockSize, cfg.Parallel)
	if err != nil {
		return err
	}
	salt := []byte(cfg.Salt)
	if cfg.SaltHex != "" {
		if salt, err = hex.DecodeString(cfg.SaltHex); err != nil {
			return errors.Wrap(err, "decoding --salt-hex")
		}
	}
	password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg.PasswordStdin)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	q := jobqueue.New(cfg.Workers,
		jobqueue.WithMetrics(jobqueue.NewMetrics(reg)),
		jobqueue.WithLogger(logger.WithField("pkg", "jobqueue")))
	defer q.Close()

	logger.WithFields(logrus.Fields{
		"workers":     q.Workers(),
		"peakMemory":  params.PeakMemory(q.Workers()),
		"lockMemory":  cfg.LockMemory,
		"memPerUnit":  params.MemoryPerUnit(),
		"bufferBytes": params.BufferLen(),
	}).Debug("Deriving key")

	d := &scrypt.Deriver{Scheduler: q, LockMemory: cfg.LockMemory}
	key, err := d.Key(params, password, salt, cfg.KeyLen, cfg.Priority)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))

	if cfg.Metrics {
		return printMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// readPassword prompts on the terminal when in is one, unless fromStdin is
// set, and otherwise reads the first line of in.
func readPassword(in io.Reader, prompt io.Writer, fromStdin bool) ([]byte, error) {
	if f, ok := in.(*os.File); ok && !fromStdin && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return nil, errors.Wrap(err, "reading password")
		}
		return password, nil
	}

	line, err := bufio.NewReader(in).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading password")
	}
	line = []byte(strings.TrimRight(string(line), "\r\n"))
	return line, nil
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %g\n", name, m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				fmt.Fprintf(w, "%s %g\n", name, m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s count=%d sum=%gs\n", name, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}
