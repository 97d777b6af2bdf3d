// Command mlkemdemo is a small command-line front end over the ML-KEM
// package: generate a key pair, encapsulate against it, and decapsulate
// a ciphertext, each as its own subcommand so they can be chained
// through files on disk.
//
// Grounded on cloudflare-cloudflared's cmd/cloudflared/main.go
// (*cli.App with app.Commands, each a *cli.Command carrying its own
// Flags and Action), replacing that binary's tunnel verbs with ML-KEM's
// three operations, and original_source/src/main.rs's
// SELECTED_PARAMETER_SET default of ML-KEM-768.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	mlkem "github.com/Gvinfinity/ml-kem-rs"
	"github.com/Gvinfinity/ml-kem-rs/internal/obslog"
)

var profiles = map[string]mlkem.Profile{
	"512":  mlkem.ML_KEM_512,
	"768":  mlkem.ML_KEM_768,
	"1024": mlkem.ML_KEM_1024,
}

func resolveProfile(name string) (mlkem.Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return mlkem.Profile{}, errors.Errorf("unknown parameter set %q (want 512, 768, or 1024)", name)
	}
	return p, nil
}

func main() {
	app := &cli.App{}
	app.Name = "mlkemdemo"
	app.Usage = "Generate, encapsulate, and decapsulate ML-KEM keys"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn, error, or fatal",
			Value: "info",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "generate",
			Usage:  "Generate a key pair and write ek/dk to files",
			Action: generateCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "set", Value: "768", Usage: "parameter set: 512, 768, or 1024"},
				&cli.StringFlag{Name: "ek-out", Value: "ek.bin", Usage: "output path for the encapsulation key"},
				&cli.StringFlag{Name: "dk-out", Value: "dk.bin", Usage: "output path for the decapsulation key"},
				&cli.BoolFlag{Name: "describe", Usage: "print a CBOR debug snapshot of the generated ek"},
			},
		},
		{
			Name:   "encapsulate",
			Usage:  "Encapsulate against an encapsulation key, writing ciphertext and shared secret",
			Action: encapsulateCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "set", Value: "768", Usage: "parameter set: 512, 768, or 1024"},
				&cli.StringFlag{Name: "ek-in", Value: "ek.bin", Usage: "input path for the encapsulation key"},
				&cli.StringFlag{Name: "ct-out", Value: "ct.bin", Usage: "output path for the ciphertext"},
			},
		},
		{
			Name:   "decapsulate",
			Usage:  "Decapsulate a ciphertext with a decapsulation key",
			Action: decapsulateCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "set", Value: "768", Usage: "parameter set: 512, 768, or 1024"},
				&cli.StringFlag{Name: "dk-in", Value: "dk.bin", Usage: "input path for the decapsulation key"},
				&cli.StringFlag{Name: "ct-in", Value: "ct.bin", Usage: "input path for the ciphertext"},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateCmd(c *cli.Context) error {
	logger := obslog.NewConsole(os.Stderr, c.String("log-level"))

	profile, err := resolveProfile(c.String("set"))
	if err != nil {
		return errors.Wrap(err, "resolving parameter set")
	}

	ek, dk, err := mlkem.KeyGen(rand.Reader, profile)
	if err != nil {
		return errors.Wrap(err, "generating key pair")
	}

	if err := os.WriteFile(c.String("ek-out"), ek.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing encapsulation key to %s", c.String("ek-out"))
	}
	if err := os.WriteFile(c.String("dk-out"), dk.Bytes(), 0o600); err != nil {
		return errors.Wrapf(err, "writing decapsulation key to %s", c.String("dk-out"))
	}

	logger.Info().
		Str("profile", profile.Name).
		Str("ek_out", c.String("ek-out")).
		Str("dk_out", c.String("dk-out")).
		Msg("generated ML-KEM key pair")

	if c.Bool("describe") {
		snapshot, err := ek.DebugDescribe()
		if err != nil {
			return errors.Wrap(err, "building debug snapshot")
		}
		fmt.Println(hex.EncodeToString(snapshot))
	}
	return nil
}

func encapsulateCmd(c *cli.Context) error {
	logger := obslog.NewConsole(os.Stderr, c.String("log-level"))

	profile, err := resolveProfile(c.String("set"))
	if err != nil {
		return errors.Wrap(err, "resolving parameter set")
	}

	raw, err := os.ReadFile(c.String("ek-in"))
	if err != nil {
		return errors.Wrapf(err, "reading encapsulation key from %s", c.String("ek-in"))
	}
	ek, err := mlkem.ParseEncapsKey(profile, raw)
	if err != nil {
		return errors.Wrap(err, "parsing encapsulation key")
	}

	ciphertext, secret, err := ek.Encapsulate(rand.Reader)
	if err != nil {
		return errors.Wrap(err, "encapsulating shared secret")
	}

	if err := os.WriteFile(c.String("ct-out"), ciphertext, 0o644); err != nil {
		return errors.Wrapf(err, "writing ciphertext to %s", c.String("ct-out"))
	}

	logger.Info().
		Str("profile", profile.Name).
		Str("ct_out", c.String("ct-out")).
		Msg("encapsulated shared secret")
	fmt.Println(hex.EncodeToString(secret[:]))
	return nil
}

func decapsulateCmd(c *cli.Context) error {
	logger := obslog.NewConsole(os.Stderr, c.String("log-level"))

	profile, err := resolveProfile(c.String("set"))
	if err != nil {
		return errors.Wrap(err, "resolving parameter set")
	}

	dkRaw, err := os.ReadFile(c.String("dk-in"))
	if err != nil {
		return errors.Wrapf(err, "reading decapsulation key from %s", c.String("dk-in"))
	}
	dk, err := mlkem.ParseDecapsKey(profile, dkRaw)
	if err != nil {
		return errors.Wrap(err, "parsing decapsulation key")
	}

	ct, err := os.ReadFile(c.String("ct-in"))
	if err != nil {
		return errors.Wrapf(err, "reading ciphertext from %s", c.String("ct-in"))
	}

	secret, err := dk.Decapsulate(ct)
	if err != nil {
		return errors.Wrap(err, "decapsulating shared secret")
	}

	logger.Info().Str("profile", profile.Name).Msg("decapsulated shared secret")
	fmt.Println(hex.EncodeToString(secret[:]))
	return nil
}
