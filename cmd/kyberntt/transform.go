package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Rohith04MVK/kyberntt/internal/logger"
	"github.com/Rohith04MVK/kyberntt/internal/polyio"
	"github.com/Rohith04MVK/kyberntt/internal/polysample"
	"github.com/Rohith04MVK/kyberntt/ntt"
)

const (
	inFlag     = "in"
	formatFlag = "format"
	stdinPath  = "-"
)

func formatFlagDef(value, usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    formatFlag,
		Aliases: []string{"f"},
		Value:   value,
		Usage:   usage,
	}
}

func polyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  inFlag,
			Value: stdinPath,
			Usage: "Read the input polynomial from `FILE`, - for stdin",
		},
		formatFlagDef(string(polyio.JSON), "Polynomial encoding {json, hex}"),
	}
}

type transform struct {
	name  string
	usage string
	apply func(p *ntt.Poly)
}

var transforms = []transform{
	{"ntt", "Forward NTT into bit-reversed NTT domain", ntt.NTT},
	{"invntt", "Inverse NTT back to coefficient form", ntt.InvNTT},
	{"invntt-mont", "Inverse NTT with an extra Montgomery factor, for BaseMul products", ntt.InvNTTToMont},
	{"tomont", "Convert coefficients into Montgomery form", (*ntt.Poly).ToMont},
	{"normalize", "Reduce coefficients to the canonical range [0, q)", (*ntt.Poly).Normalize},
}

func transformCommands() []*cli.Command {
	cmds := make([]*cli.Command, 0, len(transforms))
	for _, t := range transforms {
		t := t
		cmds = append(cmds, &cli.Command{
			Name:      t.name,
			Usage:     t.usage,
			ArgsUsage: " ",
			Flags:     polyFlags(),
			Action: func(c *cli.Context) error {
				return cliErr(runTransform(c, t))
			},
		})
	}
	return cmds
}

func runTransform(c *cli.Context, t transform) error {
	log := logger.CreateFromContext(c)
	format, err := polyio.ParseFormat(c.String(formatFlag))
	if err != nil {
		return err
	}
	p, err := readPoly(c, c.String(inFlag), format)
	if err != nil {
		return err
	}
	t.apply(p)
	log.Debug().Str("op", t.name).Str("format", string(format)).Msg("Applied transform")
	return polyio.Write(c.App.Writer, p, format)
}

func basemulCommand() *cli.Command {
	return &cli.Command{
		Name:      "basemul",
		Usage:     "Multiply two NTT-domain polynomials blockwise",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Usage: "First operand `FILE`", Required: true},
			&cli.StringFlag{Name: "b", Usage: "Second operand `FILE`", Required: true},
			formatFlagDef(string(polyio.JSON), "Polynomial encoding {json, hex}"),
		},
		Action: func(c *cli.Context) error {
			format, err := polyio.ParseFormat(c.String(formatFlag))
			if err != nil {
				return cliErr(err)
			}
			a, err := readPoly(c, c.String("a"), format)
			if err != nil {
				return cliErr(err)
			}
			b, err := readPoly(c, c.String("b"), format)
			if err != nil {
				return cliErr(err)
			}
			r := ntt.BaseMul(a, b)
			return cliErr(polyio.Write(c.App.Writer, &r, format))
		},
	}
}

func sampleCommand() *cli.Command {
	return &cli.Command{
		Name:      "sample",
		Usage:     "Expand a seed into a uniform or centered binomial polynomial",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seed", Value: "kyberntt", Usage: "Seed `STRING`"},
			&cli.IntFlag{Name: "nonce", Usage: "Nonce byte, 0 to 255"},
			&cli.IntFlag{Name: "eta", Usage: "0 for uniform mod q, 2 or 3 for a centered binomial"},
			formatFlagDef(string(polyio.JSON), "Polynomial encoding {json, hex}"),
		},
		Action: func(c *cli.Context) error {
			format, err := polyio.ParseFormat(c.String(formatFlag))
			if err != nil {
				return cliErr(err)
			}
			nonce := c.Int("nonce")
			if nonce < 0 || nonce > 255 {
				return cliErr(errors.Errorf("nonce %d out of range [0, 255]", nonce))
			}
			seed := []byte(c.String("seed"))

			var p ntt.Poly
			if eta := c.Int("eta"); eta == 0 {
				p = polysample.Uniform(seed, byte(nonce))
			} else {
				p, err = polysample.CBD(seed, byte(nonce), eta)
				if err != nil {
					return cliErr(err)
				}
			}
			return cliErr(polyio.Write(c.App.Writer, &p, format))
		},
	}
}

func zetasCommand() *cli.Command {
	return &cli.Command{
		Name:      "zetas",
		Usage:     "Print the zeta table in Montgomery form and bit-reversed order",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			formatFlagDef("go", "Output format {go, json}"),
		},
		Action: func(c *cli.Context) error {
			z := ntt.Zetas()
			switch f := c.String(formatFlag); f {
			case "go":
				_, err := io.WriteString(c.App.Writer, goTable(z))
				return cliErr(err)
			case "json":
				b, err := jsoniter.ConfigFastest.Marshal(z)
				if err != nil {
					return cliErr(err)
				}
				_, err = fmt.Fprintf(c.App.Writer, "%s\n", b)
				return cliErr(err)
			default:
				return cliErr(errors.Errorf("unknown zeta table format %q", f))
			}
		},
	}
}

func goTable(z [128]int16) string {
	var sb strings.Builder
	sb.WriteString("var zetas = [128]int16{\n")
	for i := 0; i < len(z); i += 8 {
		sb.WriteString("\t")
		for j, c := range z[i : i+8] {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d,", c)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

func readPoly(c *cli.Context, path string, format polyio.Format) (*ntt.Poly, error) {
	if path == stdinPath {
		r := c.App.Reader
		if r == nil {
			r = os.Stdin
		}
		return polyio.Read(r, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening polynomial file")
	}
	defer f.Close()
	p, err := polyio.Read(f, format)
	return p, errors.Wrapf(err, "reading %s", path)
}
