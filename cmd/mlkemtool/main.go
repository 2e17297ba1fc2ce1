// Command mlkemtool is a small operational CLI around this module's
// ML-KEM implementation: key generation, encapsulation, decapsulation,
// and KAT-file verification. It follows the pack's convention of a
// urfave/cli/v2 command tree logging through zerolog (see DESIGN.md).
package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/itzmeanjan/ml-kem-sub000"
	"github.com/itzmeanjan/ml-kem-sub000/internal/katvectors"
	"github.com/itzmeanjan/ml-kem-sub000/internal/mlkemconfig"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "mlkemtool",
		Usage: "generate, encapsulate, decapsulate and verify ML-KEM keys",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "set", Value: "ML-KEM-768", Usage: "ML-KEM-512, ML-KEM-768 or ML-KEM-1024"},
		},
		Before: func(c *cli.Context) error {
			if path := c.String("config"); path != "" {
				cfg, err := mlkemconfig.Load(path)
				if err != nil {
					return err
				}
				if !c.IsSet("set") {
					_ = c.Set("set", cfg.ParameterSet)
				}
				if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
					log = log.Level(lvl)
				}
			}
			return nil
		},
		Commands: []*cli.Command{
			keygenCommand(),
			encapsulateCommand(),
			decapsulateCommand(),
			verifyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("mlkemtool failed")
		os.Exit(1)
	}
}

func parameterSet(c *cli.Context) (mlkem.ParameterSet, error) {
	switch c.String("set") {
	case "ML-KEM-512":
		return mlkem.MLKEM512, nil
	case "ML-KEM-768":
		return mlkem.MLKEM768, nil
	case "ML-KEM-1024":
		return mlkem.MLKEM1024, nil
	default:
		return 0, fmt.Errorf("mlkemtool: unknown parameter set %q", c.String("set"))
	}
}

func keygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "generate an ML-KEM key pair and print it hex-encoded",
		Action: func(c *cli.Context) error {
			set, err := parameterSet(c)
			if err != nil {
				return err
			}
			scheme, err := mlkem.NewScheme(set)
			if err != nil {
				return err
			}

			ek, dk, err := scheme.GenerateKeyPair(rand.Reader)
			if err != nil {
				return err
			}

			log.Info().Str("parameter_set", set.String()).Msg("generated key pair")
			fmt.Printf("ek = %s\n", hex.EncodeToString(ek))
			fmt.Printf("dk = %s\n", hex.EncodeToString(dk))
			return nil
		},
	}
}

func encapsulateCommand() *cli.Command {
	return &cli.Command{
		Name:      "encapsulate",
		Usage:     "encapsulate a shared secret to a hex-encoded encapsulation key",
		ArgsUsage: "<ek-hex>",
		Action: func(c *cli.Context) error {
			set, err := parameterSet(c)
			if err != nil {
				return err
			}
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one argument: ek-hex", 1)
			}
			ek, err := hex.DecodeString(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("mlkemtool: decoding ek: %w", err)
			}

			scheme, err := mlkem.NewScheme(set)
			if err != nil {
				return err
			}

			ct, ss, err := scheme.Encapsulate(rand.Reader, ek)
			if err != nil {
				log.Error().Err(err).Msg("encapsulation failed")
				return err
			}

			fmt.Printf("ct = %s\n", hex.EncodeToString(ct))
			fmt.Printf("ss = %s\n", hex.EncodeToString(ss))
			return nil
		},
	}
}

func decapsulateCommand() *cli.Command {
	return &cli.Command{
		Name:      "decapsulate",
		Usage:     "decapsulate a shared secret from a hex-encoded ciphertext",
		ArgsUsage: "<dk-hex> <ct-hex>",
		Action: func(c *cli.Context) error {
			set, err := parameterSet(c)
			if err != nil {
				return err
			}
			if c.NArg() != 2 {
				return cli.Exit("expected exactly two arguments: dk-hex ct-hex", 1)
			}
			dk, err := hex.DecodeString(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("mlkemtool: decoding dk: %w", err)
			}
			ct, err := hex.DecodeString(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("mlkemtool: decoding ct: %w", err)
			}

			scheme, err := mlkem.NewScheme(set)
			if err != nil {
				return err
			}

			ss := scheme.Decapsulate(dk, ct)
			fmt.Printf("ss = %s\n", hex.EncodeToString(ss))
			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "replay a keygen KAT file (d, z, pk, sk, m, ct, ss records) against this implementation",
		ArgsUsage: "<kat-file>",
		Action: func(c *cli.Context) error {
			set, err := parameterSet(c)
			if err != nil {
				return err
			}
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one argument: kat-file", 1)
			}

			f, err := os.Open(c.Args().Get(0))
			if err != nil {
				return err
			}
			defer f.Close()

			records, err := katvectors.Parse(f)
			if err != nil {
				return err
			}

			scheme, err := mlkem.NewScheme(set)
			if err != nil {
				return err
			}

			failures := 0
			for i, rec := range records {
				seed := append(append([]byte{}, rec.Field("d")...), rec.Field("z")...)
				ek, dk, err := scheme.GenerateKeyPairFromSeed(seed)
				if err != nil {
					return err
				}
				if !bytes.Equal(ek, rec.Field("pk")) || !bytes.Equal(dk, rec.Field("sk")) {
					log.Warn().Int("record", i).Msg("key pair mismatch")
					failures++
					continue
				}

				ct, ss, err := encapsulateWithSeed(scheme, ek, rec.Field("m"))
				if err != nil {
					return err
				}
				if !bytes.Equal(ct, rec.Field("ct")) || !bytes.Equal(ss, rec.Field("ss")) {
					log.Warn().Int("record", i).Msg("encapsulation mismatch")
					failures++
				}
			}

			log.Info().Int("records", len(records)).Int("failures", failures).Msg("verification complete")
			if failures > 0 {
				return cli.Exit(fmt.Sprintf("%d/%d records failed", failures, len(records)), 1)
			}
			return nil
		},
	}
}

func encapsulateWithSeed(scheme mlkem.Scheme, ek, m []byte) ([]byte, []byte, error) {
	return scheme.Encapsulate(fixedReader{b: m}, ek)
}

// fixedReader implements io.Reader by replaying a fixed byte slice,
// letting verifyCommand drive Scheme.Encapsulate's randomness from a KAT
// record's message field rather than crypto/rand.
type fixedReader struct {
	b []byte
}

func (r fixedReader) Read(p []byte) (int, error) {
	n := copy(p, r.b)
	return n, nil
}

