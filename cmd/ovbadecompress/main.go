// ovbadecompress expands an MS-OVBA compressed stream (for example a VBA module
// stream extracted from a vbaProject.bin) into raw bytes and/or a hex text dump.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/woozymasta/ovba"
	"github.com/woozymasta/ovba/internal/config"
	"github.com/woozymasta/ovba/internal/logging"
	"github.com/woozymasta/ovba/internal/output"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := config.NewFlagSet("ovbadecompress")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		fs.Usage()
		return 2
	}

	log, closeLog, err := logging.NewLogger(cfg.LogLevel, cfg.LogFilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return 1
	}
	defer func() { _ = closeLog() }()

	if err := decompressFile(cfg, log); err != nil {
		log.WithError(err).Error("decompression failed")
		return 1
	}

	return 0
}

func decompressFile(cfg *config.Config, log *logrus.Logger) error {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := &ovba.Options{
		Strict:        cfg.Strict,
		MaxOutputSize: cfg.MaxOutputSize,
		MaxInputSize:  cfg.MaxInputSize,
		Logger:        log,
	}
	src, err := ovba.ReadContainer(f, opts.MaxInputSize)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.Input, err)
	}

	chunks, out, err := ovba.DecompressChunks(src, opts)
	if err != nil {
		return err
	}

	if cfg.ListChunks {
		for i, c := range chunks {
			log.WithFields(logrus.Fields{
				"chunk":      i + 1,
				"compressed": c.Compressed,
				"in_offset":  c.CompressedStart,
				"in_size":    c.CompressedSize,
				"out_offset": c.DecompressedStart,
				"out_size":   c.DecompressedSize,
			}).Info("chunk")
		}
	}

	if cfg.Output != "" {
		if err := output.WriteRaw(cfg.Output, out); err != nil {
			return err
		}
	}
	if cfg.HexOutput != "" {
		if err := output.WriteHex(cfg.HexOutput, out); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"input":  cfg.Input,
		"in":     len(src),
		"out":    len(out),
		"chunks": len(chunks),
	}).Info("decompressed")

	return nil
}
